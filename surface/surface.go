// Package surface hosts the local page that carries an embedded stream and
// relays one-way control signals into it over a websocket.
package surface

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/anisan-cli/reel/log"
	"github.com/anisan-cli/reel/player"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

var (
	// ErrNoSurface means no page is connected to receive the signal.
	ErrNoSurface = errors.New("no surface connected")
	// ErrClosed is returned by Send after Close.
	ErrClosed = errors.New("surface closed")
)

const (
	writeWait       = 2 * time.Second
	shutdownTimeout = 3 * time.Second
)

type message struct {
	Type   string `json:"type"`
	Signal string `json:"signal"`
}

// Host serves the surface page and fans signals out to every connected page.
// It implements player.Signaler.
type Host struct {
	embedURL string
	title    string
	page     *template.Template
	upgrader websocket.Upgrader

	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	srv    *http.Server
	url    string
	closed bool
}

// NewHost prepares a host for the given embed URL. Nothing listens until Start.
func NewHost(embedURL, title string) *Host {
	return &Host{
		embedURL: withPlayerAPI(embedURL),
		title:    title,
		page:     lo.Must(template.New("surface").Parse(pageTemplate)),
		conns:    make(map[*websocket.Conn]struct{}),
	}
}

// withPlayerAPI enables the postMessage API on hosts that require opting in.
func withPlayerAPI(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || !strings.Contains(strings.ToLower(u.Host), "youtube") {
		return raw
	}

	q := u.Query()
	q.Set("enablejsapi", "1")
	u.RawQuery = q.Encode()
	return u.String()
}

// Router exposes the page, the signal socket and a health probe.
func (h *Host) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Get("/signal", h.signal)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}

// Start listens on addr and serves in the background.
func (h *Host) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{Handler: h.Router(), ReadHeaderTimeout: 5 * time.Second}

	h.mu.Lock()
	h.srv = srv
	h.url = "http://" + ln.Addr().String() + "/"
	h.mu.Unlock()

	go func() {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("surface server: %v", err)
		}
	}()

	log.WithField("url", h.URL()).Info("surface listening")
	return nil
}

// URL is the page address once started.
func (h *Host) URL() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.url
}

// Connected counts pages currently listening for signals.
func (h *Host) Connected() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.conns)
}

func (h *Host) index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data := struct {
		Title    string
		EmbedURL string
	}{h.title, h.embedURL}

	if err := h.page.Execute(w, data); err != nil {
		log.Errorf("render surface page: %v", err)
	}
}

func (h *Host) signal(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("surface upgrade: %v", err)
		return
	}

	if !h.add(conn) {
		_ = conn.Close()
		return
	}
	defer h.remove(conn)

	// The page never talks back; reading only drains control frames.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Host) add(conn *websocket.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}

	h.conns[conn] = struct{}{}
	log.Debugf("surface connected from %s", conn.RemoteAddr())
	return true
}

func (h *Host) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns, conn)
	_ = conn.Close()
}

// Send writes sig to every connected page. Pages that fail to receive it are dropped.
func (h *Host) Send(sig player.Signal) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	if len(h.conns) == 0 {
		return ErrNoSurface
	}

	var errs []error
	for conn := range h.conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(message{Type: "signal", Signal: string(sig)}); err != nil {
			errs = append(errs, fmt.Errorf("send to %s: %w", conn.RemoteAddr(), err))
			delete(h.conns, conn)
			_ = conn.Close()
		}
	}

	return errors.Join(errs...)
}

// Close disconnects every page and stops the server. Later sends fail with ErrClosed.
func (h *Host) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true

	for conn := range h.conns {
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "session ended"),
			time.Now().Add(writeWait),
		)
		_ = conn.Close()
		delete(h.conns, conn)
	}

	srv := h.srv
	h.mu.Unlock()

	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown surface: %w", err)
	}
	return nil
}
