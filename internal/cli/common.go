package cli

import (
	"os"

	"github.com/fatmove/fatmove/internal/device"
	"github.com/fatmove/fatmove/internal/engine"
	"github.com/fatmove/fatmove/internal/execx"
	"github.com/fatmove/fatmove/internal/fatsort"
	"github.com/fatmove/fatmove/internal/fsops"
	"github.com/fatmove/fatmove/internal/prompt"
)

// newEngine creates an engine with real implementations of all
// dependencies, honoring the global output flags.
func newEngine(runner execx.Runner, prompter *prompt.Prompter) *engine.Engine {
	fs := fsops.NewRealFS()
	resolver := &device.Resolver{
		Lister:  &device.MountLister{Runner: runner},
		Prompt:  prompter,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Verbose: verbose,
		Quiet:   quiet,
	}
	sorter := &fatsort.Sorter{Runner: runner, Verbose: verbose}

	return engine.New(fs, runner, resolver, sorter, prompter, os.Stdout, os.Stderr)
}
