// Package device resolves which mounted FAT volume contains a
// destination path.
//
// The mount table is enumerated fresh on every resolution by asking
// mount(8) for vfat filesystems, so a volume plugged in between runs is
// always visible and nothing is persisted.
package device

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatmove/fatmove/internal/execx"
)

// Volume is one row of the system mount table.
type Volume struct {
	// Node is the block device path, e.g. /dev/sdb1.
	Node string

	// MountPoint is the path where the volume is mounted.
	MountPoint string
}

// IsZero reports whether no volume was found or chosen.
func (v Volume) IsZero() bool {
	return v.Node == "" && v.MountPoint == ""
}

// String formats the volume the way mount(8) lists it.
func (v Volume) String() string {
	return fmt.Sprintf("%s on %s", v.Node, v.MountPoint)
}

// Lister enumerates currently mounted FAT volumes.
type Lister interface {
	List(ctx context.Context) ([]Volume, error)
}

// MountLister lists FAT volumes by running mount(8) filtered to vfat.
type MountLister struct {
	Runner execx.Runner
}

// List returns the mounted vfat volumes in mount-table order.
func (l *MountLister) List(ctx context.Context) ([]Volume, error) {
	out, err := l.Runner.Output(ctx, "mount", "-t", "vfat")
	if err != nil {
		return nil, fmt.Errorf("failed to query mount table: %w", err)
	}
	return parseMountOutput(out), nil
}

// parseMountOutput parses "NODE on MOUNTPOINT type vfat (opts)" lines.
// Lines that do not look like mount table rows are skipped.
func parseMountOutput(out string) []Volume {
	var volumes []Volume
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[1] != "on" {
			continue
		}
		volumes = append(volumes, Volume{Node: fields[0], MountPoint: fields[2]})
	}
	return volumes
}
