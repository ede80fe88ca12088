package engine

import (
	"context"
	"fmt"

	"github.com/fatmove/fatmove/internal/config"
	"github.com/fatmove/fatmove/internal/planner"
)

// copyFiles hands each (source, destination) pair to cp(1).
//
// The overwrite policy picks the cp conflict flag: Yes forces, Prompt
// asks via cp's own -i when interactive, anything else never clobbers.
// Failures are reported per pair and the batch continues; retrying is
// not the engine's concern.
func (e *Engine) copyFiles(ctx context.Context, plan *planner.TransferPlan, overwrite config.Policy, interactive, verbose, quiet bool) (copied, failed int) {
	var opts []string
	switch {
	case overwrite == config.Yes:
		opts = append(opts, "-f")
	case overwrite == config.Prompt && interactive:
		opts = append(opts, "-i")
	default:
		opts = append(opts, "-n")
	}
	if verbose {
		opts = append(opts, "-v")
	}

	for i, source := range plan.SourceFiles {
		args := append([]string{source, plan.DestFiles[i]}, opts...)
		if err := e.runner.Run(ctx, "cp", args...); err != nil {
			failed++
			if !quiet {
				fmt.Fprintf(e.errOut, "ERROR: failed to copy %s\n", source)
			}
			continue
		}
		copied++
	}
	return copied, failed
}
