package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/ava-vibe/ava/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().StringP("vibe", "v", "", "Generate this vibe right away")
}

// miniCmd runs the prompt-based interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Generate styles through simple prompts instead of the full-screen interface",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		handleErr(mini.Run(ctx, &mini.Options{
			Settings: openSettings(),
			Vibe:     lo.Must(cmd.Flags().GetString("vibe")),
		}))
	},
}
