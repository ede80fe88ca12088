package engine

import (
	"context"
	"fmt"

	"github.com/fatmove/fatmove/internal/armin"
	"github.com/fatmove/fatmove/internal/planner"
)

// Run performs one transfer.
//
// The phases run strictly in sequence: sanity check, device
// resolution, plan expansion, extension filtering, audio conversion,
// directory materialization, copy, armin renaming, temp cleanup,
// source deletion, and the fatsort cycle. Per-file failures inside a
// phase are reported and the batch continues; phase-level failures
// (no device, unmount error) abort the run.
func (e *Engine) Run(ctx context.Context, req *Request) (*Result, error) {
	if err := e.checkUsage(req); err != nil {
		return nil, err
	}

	e.statusf(req, "Finding device and mount location containing %s . . .", req.Destination)
	vol, aborted, err := e.resolver.Resolve(ctx, req.Destination, req.Interactive)
	if err != nil {
		return nil, err
	}
	if aborted {
		return nil, ErrUserAbort
	}
	if vol.IsZero() {
		return nil, ErrNoDevice
	}
	e.statusf(req, "Found device %s mounted at %s", vol.Node, vol.MountPoint)

	result := &Result{Volume: vol}

	e.statusf(req, "Getting lists of source and destination locations . . .")
	builder := &planner.Builder{FS: e.fs}
	if !req.Quiet {
		builder.Warn = e.errOut
	}
	plan, err := builder.Build(req.Sources, req.Destination)
	if err != nil {
		return nil, err
	}

	e.statusf(req, "Filtering out unwanted file types . . .")
	filter := &planner.Filter{
		Settings:    req.Settings,
		Prompt:      e.prompt,
		Interactive: req.Interactive,
	}
	filter.Apply(plan)
	result.Plan = plan

	if req.DryRun {
		return result, nil
	}

	e.statusf(req, "Checking whether to convert any audio files . . .")
	tempFiles := e.converter(req).Apply(ctx, plan, req.Settings)
	result.Converted = len(tempFiles)

	e.statusf(req, "Creating destination directories . . .")
	e.ensureDirectories(plan.DestDirs, req.Settings.OverwriteDestinationFiles,
		req.Interactive, req.Verbose, req.Quiet)

	e.statusf(req, "Copying files . . .")
	result.Copied, result.CopyErrors = e.copyFiles(ctx, plan,
		req.Settings.OverwriteDestinationFiles, req.Interactive, req.Verbose, req.Quiet)

	if req.Armin {
		e.statusf(req, "Renaming A State of Trance directories . . .")
		var errOut = e.errOut
		if req.Quiet {
			errOut = nil
		}
		if err := armin.Rename(e.fs, vol.MountPoint, errOut); err != nil && !req.Quiet {
			fmt.Fprintf(e.errOut, "ERROR: %v\n", err)
		}
	}

	e.removeTempFiles(tempFiles, req.Quiet)
	e.deleteSources(req)

	if req.Fatsort {
		if err := e.fatsortCycle(ctx, vol.Node, req); err != nil {
			return result, err
		}
	}

	return result, nil
}

// checkUsage rejects multiple sources aimed at a single plain file.
func (e *Engine) checkUsage(req *Request) error {
	if len(req.Sources) < 2 {
		return nil
	}
	info, err := e.fs.Stat(req.Destination)
	if err == nil && info.Mode().IsRegular() {
		return ErrBadUsage
	}
	return nil
}

// removeTempFiles deletes the mp3 files created by conversion.
func (e *Engine) removeTempFiles(files []string, quiet bool) {
	for _, file := range files {
		if err := e.fs.Remove(file); err != nil && !quiet {
			fmt.Fprintf(e.errOut, "ERROR: failed to remove %s!\n", file)
		}
	}
}

// fatsortCycle unmounts, sorts, and remounts the device node.
func (e *Engine) fatsortCycle(ctx context.Context, node string, req *Request) error {
	e.statusf(req, "Unmounting %s . . .", node)
	if err := e.sorter.Unmount(ctx, node); err != nil {
		return err
	}

	e.statusf(req, "fatsorting %s . . .", node)
	if err := e.sorter.Sort(ctx, node); err != nil {
		return err
	}

	e.statusf(req, "Remounting %s . . .", node)
	return e.sorter.Mount(ctx, node)
}

// statusf prints a progress line in verbose mode.
func (e *Engine) statusf(req *Request, format string, args ...any) {
	if req.Verbose {
		fmt.Fprintf(e.out, format+"\n", args...)
	}
}
