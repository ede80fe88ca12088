// Package engine orchestrates a transfer end to end.
//
// The engine is the layer between the CLI and the collaborators that do
// the real work: resolve the destination's volume, expand the sources
// into a plan, filter and convert the plan, materialize destination
// directories, hand the file pairs to cp(1), and finally run the
// fatsort cycle so the device reads files in alphabetic order.
package engine

import (
	"io"

	"github.com/fatmove/fatmove/internal/config"
	"github.com/fatmove/fatmove/internal/convert"
	"github.com/fatmove/fatmove/internal/device"
	"github.com/fatmove/fatmove/internal/execx"
	"github.com/fatmove/fatmove/internal/fatsort"
	"github.com/fatmove/fatmove/internal/fsops"
	"github.com/fatmove/fatmove/internal/planner"
	"github.com/fatmove/fatmove/internal/prompt"
)

// Engine coordinates one transfer.
type Engine struct {
	fs       fsops.FS
	runner   execx.Runner
	resolver *device.Resolver
	sorter   *fatsort.Sorter
	prompt   *prompt.Prompter
	out      io.Writer
	errOut   io.Writer
}

// New creates an Engine with the given collaborators.
func New(
	fs fsops.FS,
	runner execx.Runner,
	resolver *device.Resolver,
	sorter *fatsort.Sorter,
	p *prompt.Prompter,
	out io.Writer,
	errOut io.Writer,
) *Engine {
	return &Engine{
		fs:       fs,
		runner:   runner,
		resolver: resolver,
		sorter:   sorter,
		prompt:   p,
		out:      out,
		errOut:   errOut,
	}
}

// Request describes one transfer invocation.
type Request struct {
	// Sources are the files and directories to transfer.
	Sources []string

	// Destination is a path on the mounted FAT volume.
	Destination string

	// Settings is the resolved configuration profile.
	Settings *config.Settings

	// Interactive permits prompts; when false every Prompt policy falls
	// back to its safe default.
	Interactive bool

	// Fatsort enables the unmount / sort / remount cycle after copying.
	Fatsort bool

	// Armin renames A State of Trance directories on the volume root
	// after copying.
	Armin bool

	// DryRun stops after planning and filtering.
	DryRun bool

	Verbose bool
	Quiet   bool
}

// Result reports what a transfer did.
type Result struct {
	// Volume is the resolved destination volume.
	Volume device.Volume

	// Plan is the filtered transfer plan.
	Plan *planner.TransferPlan

	// Copied and CopyErrors count the executor's per-pair outcomes.
	Copied     int
	CopyErrors int

	// Converted counts the audio files transcoded before the copy.
	Converted int
}

// converter builds the audio converter for one request.
func (e *Engine) converter(req *Request) *convert.Converter {
	return &convert.Converter{
		Runner:      e.runner,
		Prompt:      e.prompt,
		Out:         e.out,
		Err:         e.errOut,
		Interactive: req.Interactive,
		Verbose:     req.Verbose,
		Quiet:       req.Quiet,
	}
}
