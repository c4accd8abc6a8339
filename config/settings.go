package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/anisan-cli/reel/key"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	lo.Must0(validate.RegisterValidation("listen_addr", isListenAddr))
}

// isListenAddr accepts host:port pairs where port 0 asks for any free port.
func isListenAddr(fl validator.FieldLevel) bool {
	_, port, err := net.SplitHostPort(fl.Field().String())
	if err != nil {
		return false
	}

	n, err := strconv.Atoi(port)
	return err == nil && n >= 0 && n <= 65535
}

// Playback is the validated view of the player.* and surface.* settings.
type Playback struct {
	MPVPath       string `validate:"required"`
	Volume        int    `validate:"gte=0,lte=100"`
	SeekStep      int    `validate:"gte=1,lte=600"`
	AutoHideMs    int    `validate:"gte=500,lte=60000"`
	Fullscreen    bool
	SurfaceAddr   string `validate:"required,listen_addr"`
	OpenBrowser   bool
	Browser       string
	EmbedPatterns []string `validate:"dive,required"`
}

// AutoHide returns the overlay delay as a duration.
func (p Playback) AutoHide() time.Duration {
	return time.Duration(p.AutoHideMs) * time.Millisecond
}

// InitialVolume returns the configured volume in the [0,1] range used by the player.
func (p Playback) InitialVolume() float64 {
	return float64(p.Volume) / 100
}

// PlaybackSettings reads the current playback settings from viper and validates them.
func PlaybackSettings() (Playback, error) {
	p := Playback{
		MPVPath:       viper.GetString(key.PlayerMPVPath),
		Volume:        viper.GetInt(key.PlayerVolume),
		SeekStep:      viper.GetInt(key.PlayerSeekStep),
		AutoHideMs:    viper.GetInt(key.PlayerControlsAutoHide),
		Fullscreen:    viper.GetBool(key.PlayerFullscreen),
		SurfaceAddr:   viper.GetString(key.SurfaceAddr),
		OpenBrowser:   viper.GetBool(key.SurfaceOpenBrowser),
		Browser:       viper.GetString(key.SurfaceBrowser),
		EmbedPatterns: viper.GetStringSlice(key.SourcesEmbedPatterns),
	}

	if err := validate.Struct(p); err != nil {
		return Playback{}, fmt.Errorf("invalid playback settings: %w", err)
	}

	return p, nil
}
