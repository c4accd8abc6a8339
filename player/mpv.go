package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/anisan-cli/reel/log"
	"github.com/anisan-cli/reel/where"
	"github.com/samber/lo"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second
)

// MPV is a Resource backed by an mpv process controlled over JSON IPC.
type MPV struct {
	path       string
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}

	// mu serializes IPC requests.
	mu        sync.Mutex
	requestID atomic.Int64
}

// NewMPV prepares an mpv resource using the executable at path. Nothing is started until Load.
func NewMPV(path string) *MPV {
	if path == "" {
		path = "mpv"
	}

	exited := make(chan struct{})
	close(exited)

	return &MPV{path: path, exited: exited}
}

// Load starts mpv paused on target and waits for its IPC socket.
func (m *MPV) Load(target, title string, headers map[string]string) error {
	safeTarget, err := sanitizeMediaTarget(target)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if m.socketPath == "" {
		randomBytes := make([]byte, 4)
		if _, err := rand.Read(randomBytes); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf(socketPattern, randomBytes))
	}

	m.cmd = exec.Command(m.path, mpvArgs(m.socketPath, sanitizeTitle(title), safeTarget, headers)...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	m.exited = exited
	go func(cmd *exec.Cmd) {
		_ = cmd.Wait()
		close(exited)
	}(m.cmd)

	if err := m.waitForSocket(); err != nil {
		if m.IsRunning() {
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	log.WithField("socket", m.socketPath).Info("mpv started")
	return nil
}

// mpvArgs leaves video output and decoding options to the user's mpv.conf.
func mpvArgs(socketPath, title, target string, headers map[string]string) []string {
	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + socketPath,
		"--force-window=yes",
		"--idle=yes",
		"--keep-open=yes",
		"--pause",
	}

	if title != "" {
		args = append(args, "--force-media-title="+title, "--title="+title)
	}

	if len(headers) > 0 {
		names := lo.Keys(headers)
		slices.Sort(names)

		fields := lo.Map(names, func(name string, _ int) string {
			return fmt.Sprintf("%s: %s", name, strings.ReplaceAll(headers[name], ",", "%2C"))
		})
		args = append(args, "--http-header-fields="+strings.Join(fields, ","))
	}

	return append(args, "--", target)
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		if !m.IsRunning() {
			return fmt.Errorf("mpv exited before socket was ready")
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			_ = conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// Done returns a channel closed when the mpv process exits.
func (m *MPV) Done() <-chan struct{} {
	return m.exited
}

// IsRunning reports whether the mpv process is alive.
func (m *MPV) IsRunning() bool {
	select {
	case <-m.exited:
		return false
	default:
		return true
	}
}

func (m *MPV) set(property string, value any) error {
	if !m.IsRunning() {
		return ErrNotRunning
	}

	_, err := m.sendCommand([]any{"set_property", property, value})
	return err
}

func (m *MPV) Play() error {
	return m.set("pause", false)
}

func (m *MPV) Pause() error {
	return m.set("pause", true)
}

func (m *MPV) SetTimePos(seconds float64) error {
	if !m.IsRunning() {
		return ErrNotRunning
	}

	_, err := m.sendCommand([]any{"seek", seconds, "absolute"})
	return err
}

// SetVolume takes a [0,1] volume; mpv counts in percent.
func (m *MPV) SetVolume(volume float64) error {
	return m.set("volume", volume*100)
}

func (m *MPV) Muted() (bool, error) {
	if !m.IsRunning() {
		return false, ErrNotRunning
	}

	data, err := m.sendCommand([]any{"get_property", "mute"})
	if err != nil {
		return false, err
	}

	muted, ok := data.(bool)
	if !ok {
		return false, fmt.Errorf("property mute: expected bool, got %T", data)
	}

	return muted, nil
}

func (m *MPV) SetMuted(muted bool) error {
	return m.set("mute", muted)
}

func (m *MPV) SetSpeed(rate float64) error {
	return m.set("speed", rate)
}

func (m *MPV) SetFullscreen(on bool) error {
	return m.set("fullscreen", on)
}

// Observe subscribes to mpv property changes on a dedicated connection.
func (m *MPV) Observe(listener Listener) (func(), error) {
	if !m.IsRunning() {
		return nil, ErrNotRunning
	}

	o := newObserver(m.socketPath, listener)
	if err := o.Start(); err != nil {
		return nil, err
	}

	return o.Stop, nil
}

// Close quits mpv, killing it if it does not exit in time, and removes the socket.
func (m *MPV) Close() error {
	if m.socketPath == "" {
		return nil
	}

	if m.IsRunning() {
		_, _ = m.sendCommand([]any{"quit"})

		select {
		case <-m.exited:
		case <-time.After(quitTimeout):
			_ = killProcess(m.cmd)
		}
	}

	if err := os.Remove(m.socketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove socket: %w", err)
	}

	return nil
}

// sanitizeMediaTarget keeps URLs from being read as mpv flags.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
