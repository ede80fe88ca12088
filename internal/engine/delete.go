package engine

import (
	"fmt"

	"github.com/fatmove/fatmove/internal/config"
)

// deleteSources removes the source paths after a transfer, governed by
// the DeleteSources policy. Prompt asks per path when interactive and
// is skipped entirely otherwise; a declined prompt stops the deletion
// pass (the remaining sources are presumed just as wanted).
func (e *Engine) deleteSources(req *Request) {
	policy := req.Settings.DeleteSources
	if policy == config.No {
		return
	}
	doPrompt := policy == config.Prompt
	if doPrompt && !req.Interactive {
		return
	}

	e.statusf(req, "Removing source files and directories . . .")
	for _, source := range req.Sources {
		if doPrompt && !e.prompt.YesNo(fmt.Sprintf("Remove %s?", source)) {
			break
		}
		if req.Verbose {
			fmt.Fprintf(e.out, "Removing %s\n", source)
		}

		if err := e.removePath(source); err != nil && !req.Quiet {
			fmt.Fprintf(e.errOut, "ERROR: failed to remove %s\n", source)
		}
	}
}

// removePath deletes a file or a directory tree.
func (e *Engine) removePath(path string) error {
	info, err := e.fs.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return e.fs.RemoveAll(path)
	}
	return e.fs.Remove(path)
}
