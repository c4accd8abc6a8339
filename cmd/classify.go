package cmd

import (
	"encoding/json"
	"os"

	"github.com/anisan-cli/reel/color"
	"github.com/anisan-cli/reel/source"
	"github.com/anisan-cli/reel/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	classifyCmd.SetOut(os.Stdout)
}

type classification struct {
	URL  string      `json:"url"`
	Kind source.Kind `json:"kind"`
}

// classifyCmd prints the backend each URL would be played with.
var classifyCmd = &cobra.Command{
	Use:   "classify <url>...",
	Short: "Show which backend would play each URL",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		classifier := source.FromConfig()

		results := lo.Map(args, func(url string, _ int) classification {
			return classification{URL: url, Kind: classifier.Classify(url)}
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(results))
			return
		}

		kindStyle := map[source.Kind]func(string) string{
			source.Direct:   style.Fg(color.Green),
			source.Embedded: style.Fg(color.Purple),
			source.None:     style.Fg(color.Red),
		}

		for _, r := range results {
			cmd.Printf("%s %s\n", kindStyle[r.Kind](r.Kind.String()), r.URL)
		}
	},
}
