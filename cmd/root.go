// Package cmd implements the command-line interface for ava.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ava-vibe/ava/color"
	"github.com/ava-vibe/ava/constant"
	"github.com/ava-vibe/ava/filesystem"
	"github.com/ava-vibe/ava/icon"
	"github.com/ava-vibe/ava/key"
	"github.com/ava-vibe/ava/log"
	"github.com/ava-vibe/ava/settings"
	"github.com/ava-vibe/ava/style"
	"github.com/ava-vibe/ava/tui"
	"github.com/ava-vibe/ava/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "V", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("vibe", "v", "", "Prefill the vibe input")
	rootCmd.Flags().StringP("speed", "s", "", "Animation speed for this and later sessions (slow, normal, fast)")
	rootCmd.Flags().StringP("complexity", "c", "", "Preview complexity for this and later sessions (low, medium, high)")
	rootCmd.Flags().StringP("theme", "t", "", "Interface theme for this and later sessions (light, dark)")

	lo.Must0(rootCmd.RegisterFlagCompletionFunc("speed", completionOf(settings.Speeds())))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("complexity", completionOf(settings.Complexities())))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("theme", completionOf(settings.Themes())))
}

// rootCmd defines the entry point for the ava application.
var rootCmd = &cobra.Command{
	Use:   constant.Ava,
	Short: "Turn a short vibe description into a color palette and watch it come alive",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Pink).Render("    - Turn a short vibe description into a color palette and watch it come alive"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		store := openSettings()

		for _, override := range []string{"speed", "complexity", "theme"} {
			value := lo.Must(cmd.Flags().GetString(override))
			if value == "" {
				continue
			}
			if err := setSetting(store, override, value); err != nil && !lo.Contains(settingOptions(override), value) {
				handleErr(err)
			}
		}

		options := tui.Options{
			Settings: store,
			Vibe:     lo.Must(cmd.Flags().GetString("vibe")),
		}
		handleErr(tui.Run(&options))
	},
}

// openSettings opens the persisted customization and theme.
func openSettings() *settings.Store {
	return settings.Open(&settings.Options{
		Storage:  settings.NewFileStorage(filesystem.API(), where.Storage()),
		Detector: settings.DetectTheme,
		Fallback: settings.Theme(viper.GetString(key.ThemeFallback)),
	})
}

func completionOf[T ~string](options []T) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(options, func(o T, _ int) string { return string(o) }), cobra.ShellCompDirectiveNoFileComp
	}
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiMagenta + cc.Bold + cc.Underline,
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
