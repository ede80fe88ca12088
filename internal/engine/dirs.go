package engine

import (
	"fmt"

	"github.com/fatmove/fatmove/internal/config"
)

// ensureDirectories creates the destination directories in the exact
// order supplied by the expansion phase, parent before child.
//
// A target that already is a directory is skipped. A plain file in the
// way is removed when the overwrite policy allows it (Yes, or Prompt
// confirmed interactively); otherwise the error is reported and the
// loop moves on, leaving the copy phase to fail for the affected
// files. Creation failures are likewise per-target and never abort
// the batch.
func (e *Engine) ensureDirectories(dirs []string, overwrite config.Policy, interactive, verbose, quiet bool) {
	for _, dir := range dirs {
		if verbose {
			fmt.Fprintf(e.out, "Checking %s . . .\n", dir)
		}

		info, err := e.fs.Stat(dir)
		if err == nil && info.IsDir() {
			if verbose {
				fmt.Fprintf(e.out, "%s already exists\n", dir)
			}
			continue
		}

		if err == nil {
			// Something that is not a directory is in the way.
			if !e.mayOverwrite(dir, overwrite, interactive) {
				if !quiet {
					fmt.Fprintf(e.errOut, "ERROR: attempting to overwrite a file with a directory!\n")
				}
				continue
			}
			if err := e.fs.Remove(dir); err != nil {
				if !quiet {
					fmt.Fprintf(e.errOut, "ERROR: failed to create %s!\n", dir)
				}
				continue
			}
		}

		if verbose {
			fmt.Fprintf(e.out, "Creating %s\n", dir)
		}
		if err := e.fs.MkdirAll(dir, 0755); err != nil {
			if !quiet {
				fmt.Fprintf(e.errOut, "ERROR: failed to create %s!\n", dir)
			}
		}
	}
}

// mayOverwrite decides whether a blocking file may be replaced by a
// directory.
func (e *Engine) mayOverwrite(dir string, overwrite config.Policy, interactive bool) bool {
	switch overwrite {
	case config.Yes:
		return true
	case config.Prompt:
		return interactive && e.prompt.YesNo(fmt.Sprintf("%s is a file. Overwrite?", dir))
	}
	return false
}
