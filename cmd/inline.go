package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/ava-vibe/ava/config"
	"github.com/ava-vibe/ava/filesystem"
	"github.com/ava-vibe/ava/inline"
	"github.com/ava-vibe/ava/key"
	"github.com/ava-vibe/ava/query"
	"github.com/ava-vibe/ava/settings"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("vibe", "v", "", "The vibe description to generate a style for")
	lo.Must0(inlineCmd.MarkFlagRequired("vibe"))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("vibe", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))

	inlineCmd.Flags().StringP("format", "f", string(inline.JSON), "Output format (json, yaml, text)")
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("format", completionOf(inline.Formats())))

	inlineCmd.Flags().BoolP("layout", "l", false, "Include the composed preview layout with block timings")
	inlineCmd.Flags().StringP("speed", "s", "", "Animation speed used for the layout (defaults to the saved setting)")
	inlineCmd.Flags().StringP("complexity", "c", "", "Preview complexity used for the layout (defaults to the saved setting)")
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("speed", completionOf(settings.Speeds())))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("complexity", completionOf(settings.Complexities())))

	inlineCmd.Flags().Int("latency", 0, "Simulated generation time in milliseconds (defaults to "+key.GenerationLatencyMs+")")

	inlineCmd.Flags().BoolP("remember", "r", false, "Add the vibe to the suggestion history")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
}

// inlineCmd generates a single style without the interactive interface.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Generate a style non-interactively and print it",
	Long: `Generate a style for a vibe without starting the interactive interface.

The style is printed as json (default), yaml or plain text. With --layout the
output also carries the preview blocks and their reveal timings for the chosen
speed and complexity.

Generation waits for the configured latency unless --latency overrides it.`,
	Example: "  ava inline -v \"calm ocean breeze\" --format yaml --layout",
	Run: func(cmd *cobra.Command, args []string) {
		format, err := inline.ParseFormat(lo.Must(cmd.Flags().GetString("format")))
		handleErr(err)

		customization := openSettings().Customization()
		if s := lo.Must(cmd.Flags().GetString("speed")); s != "" {
			customization.Speed, err = settings.ParseSpeed(s)
			if err != nil {
				handleErr(errDidYouMean("speed", s, settingOptions("speed")))
			}
		}
		if c := lo.Must(cmd.Flags().GetString("complexity")); c != "" {
			customization.Complexity, err = settings.ParseComplexity(c)
			if err != nil {
				handleErr(errDidYouMean("complexity", c, settingOptions("complexity")))
			}
		}

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		latency := config.Latency()
		if cmd.Flags().Changed("latency") {
			latency = time.Duration(max(lo.Must(cmd.Flags().GetInt("latency")), 0)) * time.Millisecond
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		handleErr(inline.Run(ctx, &inline.Options{
			Out:           writer,
			Vibe:          lo.Must(cmd.Flags().GetString("vibe")),
			Format:        format,
			Layout:        lo.Must(cmd.Flags().GetBool("layout")),
			Customization: customization,
			Latency:       latency,
			Remember:      lo.Must(cmd.Flags().GetBool("remember")),
		}))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema of the structured inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the structured inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "output", "layout", "block", "style":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
