package cmd

import (
	"os"

	"github.com/anisan-cli/reel/color"
	"github.com/anisan-cli/reel/config"
	"github.com/anisan-cli/reel/style"
	"github.com/anisan-cli/reel/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

// envVar is one environment variable reel reads.
type envVar struct {
	Name  string
	Key   string
	Value string
}

func (e envVar) set() bool {
	return e.Value != ""
}

// envVars lists every REEL_* variable sorted by name. Key is empty for
// variables that do not map to a config key.
func envVars() []envVar {
	vars := lo.MapToSlice(config.Default, func(key string, field config.Field) envVar {
		return envVar{Name: field.Env(), Key: key}
	})
	vars = append(vars, envVar{Name: where.EnvConfigPath})

	slices.SortFunc(vars, func(a, b envVar) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})

	for i := range vars {
		vars[i].Value = os.Getenv(vars[i].Name)
	}
	return vars
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only list variables with a value")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only list variables without a value")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd prints the REEL_* variables next to the config keys they override.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the REEL_* environment variables",
	Long:  "List the REEL_* environment variables, their values in this shell and the config key each one overrides.",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		vars := lo.Filter(envVars(), func(e envVar, _ int) bool {
			return !(setOnly && !e.set()) && !(unsetOnly && e.set())
		})

		name := style.New().Bold(true).Foreground(color.Purple).Render
		for _, e := range vars {
			value := style.Fg(color.Red)("unset")
			if e.set() {
				value = style.Fg(color.Green)(e.Value)
			}

			cmd.Print(name(e.Name), "=", value)
			if e.Key != "" {
				cmd.Print(style.Faint("  # " + e.Key))
			}
			cmd.Println()
		}
	},
}
