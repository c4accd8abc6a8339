// Package cmd implements the command-line interface for reel.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/reel/color"
	"github.com/anisan-cli/reel/constant"
	"github.com/anisan-cli/reel/icon"
	"github.com/anisan-cli/reel/key"
	"github.com/anisan-cli/reel/log"
	"github.com/anisan-cli/reel/player"
	"github.com/anisan-cli/reel/style"
	"github.com/anisan-cli/reel/version"
	"github.com/anisan-cli/reel/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	addPlayFlags(rootCmd)

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Leftover mpv sockets from crashed sessions.
	cobra.OnInitialize(func() { go removeStaleSockets() })
}

func removeStaleSockets() {
	n, err := player.RemoveStaleSockets(where.Temp())
	if err != nil {
		log.Debugf("sweep sockets: %v", err)
		return
	}
	if n > 0 {
		log.Infof("removed %d stale mpv sockets", n)
	}
}

// rootCmd plays its argument when one is given and prints help otherwise.
var rootCmd = &cobra.Command{
	Use:   constant.Reel + " [url]",
	Short: "A terminal video player for direct streams and embedded players",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A terminal video player for direct streams and embedded players"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 && !cmd.Flags().Changed("trailer") && !cmd.Flags().Changed("content") {
			handleErr(cmd.Help())
			return
		}

		runPlay(cmd, args)
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
