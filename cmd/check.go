package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/anisan-cli/reel/config"
	"github.com/anisan-cli/reel/constant"
	"github.com/anisan-cli/reel/icon"
	"github.com/anisan-cli/reel/key"
	"github.com/anisan-cli/reel/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd reports whether the configured mpv binary can be found.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the external player is installed",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.PlaybackSettings()
		handleErr(err)

		path, err := exec.LookPath(settings.MPVPath)
		if err != nil {
			printMissingDependencyError(settings.MPVPath)
			os.Exit(1)
		}

		fmt.Printf("%s mpv found at %s\n", style.Fg(style.Green)(icon.Get(icon.Success)), path)
	},
}

// CheckDependencies exits when the mpv binary at path cannot be resolved.
func CheckDependencies(path string) {
	if _, err := exec.LookPath(path); err != nil {
		printMissingDependencyError(path)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install mpv"
	case constant.Linux:
		installCmd = "sudo apt install mpv"
	case constant.Windows:
		installCmd = "scoop install mpv"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The player '%s' was not found. Set %s to its location.", dep, style.Bold(key.PlayerMPVPath)))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
