package cmd

import (
	"os"

	"github.com/ava-vibe/ava/color"
	"github.com/ava-vibe/ava/config"
	"github.com/ava-vibe/ava/style"
	"github.com/ava-vibe/ava/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

// envVariables maps every supported environment variable to the config key it overrides.
func envVariables() map[string]string {
	vars := lo.MapEntries(config.Default, func(k string, field config.Field) (string, string) {
		return field.Env(), k
	})
	vars[where.EnvConfigPath] = ""
	return vars
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		vars := envVariables()
		names := lo.Keys(vars)
		slices.Sort(names)

		for _, env := range names {
			value, present := os.LookupEnv(env)

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Print(style.Fg(color.Green)(value))
			} else {
				cmd.Print(style.Fg(color.Red)("unset"))
			}

			if k := vars[env]; k != "" {
				cmd.Print(style.Faint("  # " + k))
			}
			cmd.Println()
		}
	},
}
