// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount is the number of fields registered in config.Default.
const DefinedFieldsCount = 15

// Source Classification - these keys extend how watch URLs are mapped to playback backends.
const (
	SourcesEmbedPatterns = "sources.embed_patterns"
)

// Media Playback - these keys configure the direct playback engine and the control surface.
const (
	PlayerMPVPath          = "player.mpv_path"
	PlayerVolume           = "player.volume"
	PlayerSeekStep         = "player.seek_step"
	PlayerControlsAutoHide = "player.controls_autohide"
	PlayerFullscreen       = "player.fullscreen"
)

// Embedded Surface - these keys govern the local page that hosts embedded streams.
const (
	SurfaceAddr        = "surface.addr"
	SurfaceOpenBrowser = "surface.open_browser"
	SurfaceBrowser     = "surface.browser"
)

// Iconography
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
