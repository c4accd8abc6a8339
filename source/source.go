// Package source decides what a watch target plays and which backend governs it.
package source

import "strings"

// Kind identifies the playback backend that owns a session.
type Kind int

const (
	// None means there is nothing to play.
	None Kind = iota
	// Direct is a seekable, timed resource played by a native engine.
	Direct
	// Embedded is an opaque stream reachable only through one-way signals.
	Embedded
)

func (k Kind) String() string {
	switch k {
	case Direct:
		return "direct"
	case Embedded:
		return "embedded"
	default:
		return "none"
	}
}

// MarshalText renders the kind by name in JSON and TOML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Source is the immutable playback target of a session.
type Source struct {
	URL     string
	Kind    Kind
	Title   string
	Headers map[string]string
}

// Playable reports whether a backend can be opened for the source.
func (s Source) Playable() bool {
	return s.Kind != None && strings.TrimSpace(s.URL) != ""
}
