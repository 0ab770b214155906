package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/ava-vibe/ava/color"
	"github.com/ava-vibe/ava/icon"
	"github.com/ava-vibe/ava/settings"
	"github.com/ava-vibe/ava/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// settingNames lists what `settings set` accepts, in display order.
var settingNames = []string{"speed", "complexity", "theme"}

func settingOptions(name string) []string {
	switch name {
	case "speed":
		return lo.Map(settings.Speeds(), func(s settings.Speed, _ int) string { return string(s) })
	case "complexity":
		return lo.Map(settings.Complexities(), func(c settings.Complexity, _ int) string { return string(c) })
	case "theme":
		return lo.Map(settings.Themes(), func(t settings.Theme, _ int) string { return string(t) })
	}
	return nil
}

// closest returns the candidate with the smallest edit distance to s.
func closest(s string, candidates []string) string {
	return lo.MinBy(candidates, func(a string, b string) bool {
		return levenshtein.Distance(s, a) < levenshtein.Distance(s, b)
	})
}

func errDidYouMean(what, got string, candidates []string) error {
	return fmt.Errorf(
		"unknown %s %s, did you mean %s?",
		what,
		style.Fg(color.Red)(got),
		style.Fg(color.Yellow)(closest(got, candidates)),
	)
}

// setSetting validates and persists one named setting.
func setSetting(store *settings.Store, name, value string) error {
	switch name {
	case "speed":
		speed, err := settings.ParseSpeed(value)
		if err != nil {
			return errDidYouMean(name, value, settingOptions(name))
		}
		return store.SetSpeed(speed)
	case "complexity":
		complexity, err := settings.ParseComplexity(value)
		if err != nil {
			return errDidYouMean(name, value, settingOptions(name))
		}
		return store.SetComplexity(complexity)
	case "theme":
		theme, err := settings.ParseTheme(value)
		if err != nil {
			return errDidYouMean(name, value, settingOptions(name))
		}
		return store.SetTheme(theme)
	}

	return errDidYouMean("setting", name, settingNames)
}

func printSettings(cmd *cobra.Command, store *settings.Store) {
	c := store.Customization()
	values := map[string]string{
		"speed":      string(c.Speed),
		"complexity": string(c.Complexity),
		"theme":      string(store.Theme()),
	}

	for _, name := range settingNames {
		cmd.Printf("%s %s\n", style.Fg(color.Purple)(fmt.Sprintf("%-10s", name)), style.Fg(color.Yellow)(values[name]))
	}
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.SetOut(os.Stdout)
}

// settingsCmd shows the persisted customization and theme.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Display and change the persisted animation speed, preview complexity and theme",
	Run: func(cmd *cobra.Command, args []string) {
		printSettings(cmd, openSettings())
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	settingsSetCmd.SetOut(os.Stdout)
}

// settingsSetCmd changes one setting.
var settingsSetCmd = &cobra.Command{
	Use:     "set [speed|complexity|theme] [value]",
	Short:   "Change a single setting",
	Example: "  ava settings set speed fast",
	Args:    cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		switch len(args) {
		case 0:
			return settingNames, cobra.ShellCompDirectiveNoFileComp
		case 1:
			return settingOptions(args[0]), cobra.ShellCompDirectiveNoFileComp
		default:
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		name, value := args[0], args[1]
		handleErr(setSetting(openSettings(), name, value))

		cmd.Printf(
			"%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(name),
			style.Fg(color.Yellow)(value),
		)
	},
}

func init() {
	settingsCmd.AddCommand(settingsEditCmd)
	settingsEditCmd.SetOut(os.Stdout)
}

// settingsEditCmd walks through every setting with interactive prompts.
var settingsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Change the settings interactively",
	Run: func(cmd *cobra.Command, args []string) {
		store := openSettings()
		c := store.Customization()
		current := map[string]string{
			"speed":      string(c.Speed),
			"complexity": string(c.Complexity),
			"theme":      string(store.Theme()),
		}

		answers := make(map[string]string, len(settingNames))
		for _, name := range settingNames {
			var answer string
			prompt := &survey.Select{
				Message: fmt.Sprintf("%s %s", icon.Get(icon.Question), name),
				Options: settingOptions(name),
				Default: current[name],
			}
			handleErr(survey.AskOne(prompt, &answer))
			answers[name] = answer
		}

		for _, name := range settingNames {
			if answers[name] == current[name] {
				continue
			}
			handleErr(setSetting(store, name, answers[name]))
		}

		cmd.Println()
		printSettings(cmd, store)
	},
}

func init() {
	settingsCmd.AddCommand(settingsResetCmd)
	settingsResetCmd.SetOut(os.Stdout)
}

// settingsResetCmd restores the default customization and theme.
var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default speed, complexity and theme",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(openSettings().Reset())
		cmd.Printf("%s settings reset\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
