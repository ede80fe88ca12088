package planner

import (
	"fmt"
	"io"
	iofs "io/fs"
	"path/filepath"

	"github.com/fatmove/fatmove/internal/fsops"
)

// Builder expands a list of source paths into a TransferPlan.
type Builder struct {
	FS fsops.FS

	// Warn receives missing-source diagnostics; nil suppresses them.
	Warn io.Writer
}

// Build expands sources into a plan rooted at destRoot.
//
// A regular file contributes one file pair. A directory is walked
// pre-order and contributes a directory pair for every directory
// visited (itself included) and a file pair for every file found. A
// source that is neither is warned about and skipped.
//
// The destination for a path is destRoot plus the path with its
// immediate parent directory prefix stripped, so expanding /a/b/c into
// /mnt/d targets /mnt/d/c.
func (b *Builder) Build(sources []string, destRoot string) (*TransferPlan, error) {
	destAbs, err := filepath.Abs(destRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination root: %w", err)
	}

	plan := NewTransferPlan()
	for _, source := range sources {
		abs, err := filepath.Abs(source)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve source %s: %w", source, err)
		}
		parentLen := len(filepath.Dir(abs))

		info, err := b.FS.Stat(abs)
		switch {
		case err == nil && info.Mode().IsRegular():
			plan.AddFile(abs, destAbs+abs[parentLen:])

		case err == nil && info.IsDir():
			walkErr := b.FS.WalkDir(abs, func(path string, d iofs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					plan.AddDir(path, destAbs+path[parentLen:])
				} else {
					plan.AddFile(path, destAbs+path[parentLen:])
				}
				return nil
			})
			if walkErr != nil {
				return nil, fmt.Errorf("failed to walk %s: %w", abs, walkErr)
			}

		default:
			if b.Warn != nil {
				fmt.Fprintf(b.Warn, "ERROR: '%s' does not exist!\n", source)
			}
		}
	}

	return plan, nil
}
