// Package fatsort drives the unmount / sort / remount cycle.
//
// fatsort(1) rewrites a FAT filesystem's directory tables into
// alphabetic order, which is what players that read files in physical
// order care about. It only works on unmounted devices, so the cycle is
// always unmount, sort, mount, each under sudo.
package fatsort

import (
	"context"
	"fmt"

	"github.com/fatmove/fatmove/internal/execx"
)

// Sorter runs the fatsort cycle on a block device.
type Sorter struct {
	Runner  execx.Runner
	Verbose bool
}

// Available reports whether the fatsort binary is on PATH.
func (s *Sorter) Available() bool {
	return s.Runner.LookPath("fatsort")
}

// Unmount unmounts the device node.
func (s *Sorter) Unmount(ctx context.Context, node string) error {
	args := []string{"umount", node}
	if s.Verbose {
		args = append(args, "-v")
	}
	if err := s.Runner.Run(ctx, "sudo", args...); err != nil {
		return fmt.Errorf("failed to unmount %s: %w", node, err)
	}
	return nil
}

// Sort runs fatsort on the unmounted device node.
func (s *Sorter) Sort(ctx context.Context, node string) error {
	args := []string{"fatsort", node}
	if !s.Verbose {
		args = append(args, "-q")
	}
	if err := s.Runner.Run(ctx, "sudo", args...); err != nil {
		return fmt.Errorf("failed to fatsort %s: %w", node, err)
	}
	return nil
}

// Mount remounts the device node using its fstab entry.
func (s *Sorter) Mount(ctx context.Context, node string) error {
	args := []string{"mount", node}
	if s.Verbose {
		args = append(args, "-v")
	}
	if err := s.Runner.Run(ctx, "sudo", args...); err != nil {
		return fmt.Errorf("failed to remount %s: %w", node, err)
	}
	return nil
}
