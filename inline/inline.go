// Package inline provides the non-interactive, scriptable execution mode.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ava-vibe/ava/generation"
	"github.com/ava-vibe/ava/log"
	"github.com/ava-vibe/ava/preview"
	"github.com/ava-vibe/ava/query"
	"github.com/samber/mo"
)

// ErrEmptyVibe is returned for blank input, which never starts a generation.
var ErrEmptyVibe = errors.New("vibe is empty")

// Run generates one style through the same controller the interactive mode uses
// and writes it to options.Out.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Format == "" {
		options.Format = JSON
	}

	controller := generation.New(&generation.Options{Latency: options.Latency})
	defer controller.Close()

	job, ok := controller.Request(options.Vibe)
	if !ok {
		return ErrEmptyVibe
	}

	style, err := controller.Await(ctx)
	if err != nil {
		return fmt.Errorf("generation %s: %w", job.ID, err)
	}

	if options.Remember {
		if err := query.Remember(options.Vibe, 1); err != nil {
			log.Warnf("failed to remember vibe: %v", err)
		}
	}

	output := &Output{
		Vibe:  options.Vibe,
		Style: style,
		Hex:   hexOf(style),
	}

	if options.Layout {
		composed := preview.Compose(mo.Some(style), options.Customization)
		output.Layout = newLayout(composed, options.Customization)
	}

	return write(options.Out, output, options.Format)
}
