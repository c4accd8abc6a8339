package config

import (
	"github.com/anisan-cli/reel/key"
)

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to REEL_* environment variables.
var EnvExposed []string

var fields = []Field{
	{key.SourcesEmbedPatterns, []string{}, "Extra regular expressions matched against watch URLs.\nA match routes the URL to the embedded surface instead of mpv"},

	{key.PlayerMPVPath, "mpv", "Path to the mpv executable used for direct playback"},
	{key.PlayerVolume, 100, "Initial playback volume. From 0 to 100"},
	{key.PlayerSeekStep, 5, "Seconds skipped by the left and right arrow keys"},
	{key.PlayerControlsAutoHide, 3500, "Milliseconds of inactivity before the controls overlay hides"},
	{key.PlayerFullscreen, false, "Request fullscreen as soon as direct playback starts"},

	{key.SurfaceAddr, "127.0.0.1:0", "Listen address of the local page hosting embedded streams.\nPort 0 picks a free port"},
	{key.SurfaceOpenBrowser, true, "Open the embedded surface page in a browser"},
	{key.SurfaceBrowser, "", "Browser application used for the surface page.\nEmpty uses the system default"},

	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},

	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},

	{key.CliColored, true, "Enable colored CLI output"},
	{key.CliVersionCheck, true, "Enable automatic version check"},
}

func init() {
	for _, f := range fields {
		if _, exists := Default[f.Key]; exists {
			panic("duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}
