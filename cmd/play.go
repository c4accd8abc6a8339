package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/anisan-cli/reel/config"
	"github.com/anisan-cli/reel/controller"
	"github.com/anisan-cli/reel/filesystem"
	"github.com/anisan-cli/reel/icon"
	"github.com/anisan-cli/reel/log"
	"github.com/anisan-cli/reel/open"
	"github.com/anisan-cli/reel/player"
	"github.com/anisan-cli/reel/source"
	"github.com/anisan-cli/reel/surface"
	"github.com/anisan-cli/reel/tui"
	"github.com/anisan-cli/reel/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("trailer", "t", "", "Fallback URL played when the watch URL is missing")
	cmd.Flags().StringP("title", "T", "", "Title shown in the player and the window")
	cmd.Flags().StringToStringP("header", "H", map[string]string{}, "HTTP header forwarded to the stream request (key=value)")
	cmd.Flags().StringP("content", "c", "", "Read the watch target from a JSON file, - for stdin")
	cmd.Flags().Bool("no-browser", false, "Do not open the browser for embedded players")
}

// playCmd opens a playback session for a watch URL.
var playCmd = &cobra.Command{
	Use:   "play [url]",
	Short: "Play a direct stream in mpv or an embedded player in the browser",
	Example: `  reel play https://cdn.example.com/movie.mp4
  reel play https://www.youtube.com/embed/aqz-KE-bpKQ
  reel play --trailer https://www.youtube.com/embed/aqz-KE-bpKQ`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	content, err := contentFromFlags(cmd, args)
	handleErr(err)

	settings, err := config.PlaybackSettings()
	handleErr(err)

	src := source.WithPatterns(settings.EmbedPatterns).Resolve(content)
	log.WithFields(map[string]any{"kind": src.Kind, "url": src.URL}).Info("resolved source")

	if src.Kind == source.Direct {
		CheckDependencies(settings.MPVPath)
	}

	noBrowser := lo.Must(cmd.Flags().GetBool("no-browser"))

	erase := util.PrintErasable(fmt.Sprintf("%s Opening %s...", icon.Get(icon.Progress), src.Kind))
	ctrl := controller.New(src, newOpener(settings, noBrowser), controller.Options{
		AutoHideDelay: settings.AutoHide(),
		Volume:        mo.Some(settings.InitialVolume()),
	})
	erase()

	if settings.Fullscreen {
		ctrl.RequestFullscreen()
	}

	err = tui.Run(ctrl, tui.Options{
		Title:    content.String(),
		SeekStep: float64(settings.SeekStep),
	})

	if closeErr := ctrl.Close(); closeErr != nil {
		log.Warnf("close session: %v", closeErr)
	}
	handleErr(err)
}

// contentFromFlags builds the watch target from a content file or from the
// positional URL and flags. Flags override fields read from the file.
func contentFromFlags(cmd *cobra.Command, args []string) (source.Content, error) {
	var content source.Content

	if path := lo.Must(cmd.Flags().GetString("content")); path != "" {
		var err error
		if content, err = readContent(path); err != nil {
			return content, err
		}
	}

	if len(args) > 0 {
		content.WatchURL = args[0]
	}

	if trailer := lo.Must(cmd.Flags().GetString("trailer")); trailer != "" {
		content.TrailerURL = trailer
	}

	if title := lo.Must(cmd.Flags().GetString("title")); title != "" {
		content.Title = title
	}

	if headers := lo.Must(cmd.Flags().GetStringToString("header")); len(headers) > 0 {
		content.Headers = lo.Assign(content.Headers, headers)
	}

	return content, nil
}

func readContent(path string) (source.Content, error) {
	var (
		content source.Content
		r       io.Reader
	)

	if path == "-" {
		r = os.Stdin
	} else {
		file, err := filesystem.API().Open(path)
		if err != nil {
			return content, fmt.Errorf("open content: %w", err)
		}
		defer util.Ignore(file.Close)
		r = file
	}

	if err := json.NewDecoder(r).Decode(&content); err != nil {
		return content, fmt.Errorf("decode content: %w", err)
	}

	return content, nil
}

// newOpener starts mpv for direct sources and the browser surface for embedded ones.
func newOpener(settings config.Playback, noBrowser bool) controller.Opener {
	return func(src source.Source, listener player.Listener) (player.Backend, error) {
		switch src.Kind {
		case source.Direct:
			mpv := player.NewMPV(settings.MPVPath)
			if err := mpv.Load(src.URL, src.Title, src.Headers); err != nil {
				return nil, err
			}

			direct, err := player.NewDirect(mpv, listener)
			if err != nil {
				_ = mpv.Close()
				return nil, err
			}
			return direct, nil
		case source.Embedded:
			host := surface.NewHost(src.URL, src.Title)
			if err := host.Start(settings.SurfaceAddr); err != nil {
				return nil, err
			}

			if settings.OpenBrowser && !noBrowser {
				if err := open.StartWith(host.URL(), settings.Browser); err != nil {
					log.Warnf("open browser: %v", err)
				}
			}

			fmt.Printf("%s Embedded player at %s\n", icon.Get(icon.Embedded), host.URL())
			return player.NewEmbedded(host, listener), nil
		default:
			return nil, fmt.Errorf("no backend for %s source", src.Kind)
		}
	}
}
