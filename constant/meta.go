// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Reel is the canonical application identifier used for filesystem paths and CLI branding.
	Reel = "reel"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is sent with outbound HTTP requests and forwarded to mpv for direct streams.
	UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, injected at link time with -ldflags "-X".
var (
	BuiltAt  string
	BuiltBy  string
	Revision string
)
