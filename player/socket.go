package player

import (
	"net"
	"path/filepath"
	"time"

	"github.com/anisan-cli/reel/filesystem"
	"github.com/anisan-cli/reel/log"
)

const (
	socketPattern = "mpv-%x.sock"
	socketGlob    = "mpv-*.sock"

	// staleSocketAge leaves sockets of sessions that are still starting alone.
	staleSocketAge = 10 * time.Second
	dialTimeout    = 200 * time.Millisecond
)

// RemoveStaleSockets deletes mpv sockets in dir that nobody listens on any
// more. Sockets of running sessions, and sockets younger than a few seconds,
// are kept.
func RemoveStaleSockets(dir string) (removed int, err error) {
	fs := filesystem.API()

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || now.Sub(entry.ModTime()) < staleSocketAge {
			continue
		}

		if matched, _ := filepath.Match(socketGlob, entry.Name()); !matched {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if isListening(path) {
			continue
		}

		if err := fs.Remove(path); err != nil {
			log.WithField("socket", path).Warnf("remove stale socket: %v", err)
			continue
		}
		removed++
	}

	return removed, nil
}

func isListening(path string) bool {
	conn, err := net.DialTimeout("unix", path, dialTimeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
