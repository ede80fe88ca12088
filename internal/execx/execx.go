// Package execx wraps external command execution behind an interface.
//
// fatmove delegates all real work on the volume to system utilities
// (mount, cp, fatsort, ffmpeg, sudo). Routing those invocations through
// the Runner interface keeps the rest of the code testable without
// spawning processes.
package execx

import (
	"context"
	"os"
	"os/exec"
)

// Runner executes external commands.
type Runner interface {
	// Run executes name with args, wiring the command to the caller's
	// stdio so interactive tools (cp -i, ffmpeg) can talk to the user.
	// A non-zero exit is returned as an error.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes name with args and returns its stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// LookPath reports whether name is on PATH.
	LookPath(name string) bool
}

// RealRunner implements Runner using os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes name with args attached to the process stdio.
func (r *RealRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Output executes name with args and returns its stdout.
func (r *RealRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	return string(out), err
}

// LookPath reports whether name is on PATH.
func (r *RealRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
