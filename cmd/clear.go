package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ava-vibe/ava/filesystem"
	"github.com/ava-vibe/ava/icon"
	"github.com/ava-vibe/ava/query"
	"github.com/ava-vibe/ava/settings"
	"github.com/ava-vibe/ava/util"
	"github.com/ava-vibe/ava/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is a persisted artifact that can be erased selectively.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() (string, error)
}

func storageRecord(record string) func() (string, error) {
	return func() (string, error) {
		return "", settings.NewFileStorage(filesystem.API(), where.Storage()).Delete(record)
	}
}

func clearLogs() (string, error) {
	entries, err := filesystem.API().ReadDir(where.Logs())
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if err := util.Delete(filepath.Join(where.Logs(), entry.Name())); err != nil {
			return "", err
		}
	}
	return util.Quantify(len(entries), "file", "files"), nil
}

var clearTargets = []clearTarget{
	{"customization settings", "settings", mo.Some("s"), storageRecord(settings.CustomizationRecord)},
	{"theme", "theme", mo.Some("t"), storageRecord(settings.ThemeRecord)},
	{"vibe history", "vibes", mo.Some("v"), func() (string, error) { return "", query.Forget() }},
	{"logs", "logs", mo.Some("l"), clearLogs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.SetOut(os.Stdout)
}

// clearCmd erases saved settings, vibe history and logs.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear saved settings, vibe history and logs",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			detail, err := target.clear()
			handleErr(err)

			if detail != "" {
				cmd.Printf("%s %s cleared (%s)\n", icon.Get(icon.Success), util.Capitalize(target.name), detail)
			} else {
				cmd.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
			}
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
