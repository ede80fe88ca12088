// Package armin renames "A State of Trance" rip directories.
//
// Standard baby967 rips are named
// "Armin van Buuren - A State Of Trance 800 (2017-02-09)" and similar;
// after a transfer the copies on the volume root get shortened to just
// the episode number so the head unit's directory listing stays usable.
package armin

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fatmove/fatmove/internal/fsops"
)

// episodePattern captures the episode number, including the x.y form
// used by special episodes like 800.1.
var episodePattern = regexp.MustCompile(`(?i)^armin van buuren - a state of trance (\d{3,4}(?:\.\d)?)`)

// Rename shortens matching directories directly under root to their
// episode number. Failures are reported to errOut (nil suppresses
// them) and do not stop the loop.
func Rename(fs fsops.FS, root string, errOut io.Writer) error {
	entries, err := fs.ReadDir(root)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", root, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), "Armin") {
			continue
		}
		match := episodePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}

		oldPath := filepath.Join(root, entry.Name())
		newPath := filepath.Join(root, match[1])
		if err := fs.Rename(oldPath, newPath); err != nil {
			if errOut != nil {
				fmt.Fprintf(errOut, "ERROR: failed to rename %s\n", entry.Name())
			}
		}
	}
	return nil
}
