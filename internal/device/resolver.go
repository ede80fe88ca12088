package device

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatmove/fatmove/internal/prompt"
)

// Resolver maps a destination path to the mounted FAT volume that
// contains it, automatically or via interactive disambiguation.
type Resolver struct {
	Lister Lister
	Prompt *prompt.Prompter

	// Out receives the interactive device menu, Err the diagnostics.
	Out io.Writer
	Err io.Writer

	Verbose bool
	Quiet   bool
}

// Resolve returns the volume whose mount point contains dest.
//
// Matching is a raw string-prefix test against the absolute destination
// path, in mount-table order: the first volume whose mount point is a
// prefix of the destination wins. Note this means /mnt/usb also claims
// a destination under /mnt/usb-backup; callers relying on overlapping
// mount point names get the first table entry.
//
// When nothing matches and interactive is set, the mounted volumes are
// offered as a numbered menu with 0 meaning abort. A zero Volume with
// aborted false means no device was found; aborted true means the user
// declined, which is not an error.
func (r *Resolver) Resolve(ctx context.Context, dest string, interactive bool) (vol Volume, aborted bool, err error) {
	abs, err := filepath.Abs(dest)
	if err != nil {
		return Volume{}, false, fmt.Errorf("failed to resolve destination path: %w", err)
	}

	volumes, err := r.Lister.List(ctx)
	if err != nil {
		return Volume{}, false, err
	}
	if len(volumes) == 0 {
		return Volume{}, false, nil
	}

	for _, v := range volumes {
		if strings.HasPrefix(abs, v.MountPoint) {
			return v, false, nil
		}
	}

	if !interactive {
		return Volume{}, false, nil
	}
	return r.selectVolume(volumes)
}

// selectVolume asks the operator to pick a volume from the mount table.
func (r *Resolver) selectVolume(volumes []Volume) (Volume, bool, error) {
	if r.Verbose {
		fmt.Fprintln(r.Out, "Failed to find device automatically!")
	}
	fmt.Fprintf(r.Out, "Mounted FAT devices:\n\n")
	fmt.Fprintln(r.Out, "[0] abort!")
	for i, v := range volumes {
		fmt.Fprintf(r.Out, "[%d] %s\n", i+1, v)
	}
	fmt.Fprintln(r.Out)

	query := fmt.Sprintf("Drive to transfer to or abort [0-%d]", len(volumes))
	n, err := r.Prompt.SelectIndex(query)
	if err != nil {
		if !r.Quiet {
			fmt.Fprintf(r.Err, "ERROR: invalid index\n")
		}
		return Volume{}, false, nil
	}

	switch {
	case n == 0:
		return Volume{}, true, nil
	case n < 0 || n > len(volumes):
		if !r.Quiet {
			fmt.Fprintf(r.Err, "ERROR: invalid index\n")
		}
		return Volume{}, false, nil
	}
	return volumes[n-1], false, nil
}
