// Package filesystem routes every file access through one swappable afero backend.
package filesystem

import (
	"sync"

	"github.com/spf13/afero"
)

var (
	mu      sync.RWMutex
	backend = afero.Afero{Fs: afero.NewOsFs()}
)

// API returns the active backend.
func API() afero.Afero {
	mu.RLock()
	defer mu.RUnlock()

	return backend
}

// Use swaps the backend and returns a function restoring the previous one.
func Use(fs afero.Fs) (restore func()) {
	mu.Lock()
	previous := backend
	backend = afero.Afero{Fs: fs}
	mu.Unlock()

	return func() {
		mu.Lock()
		backend = previous
		mu.Unlock()
	}
}

// SetOsFs switches to the operating system filesystem.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}
