// Package rootx handles privilege elevation for the fatsort cycle.
//
// Unmounting, sorting, and remounting the device all require root, so
// when the process is not already root it re-executes its own command
// line under sudo. The UpdateUserCredentials setting decides whether
// sudo is allowed to cache the passphrase for later use.
package rootx

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"github.com/fatmove/fatmove/internal/config"
	"github.com/fatmove/fatmove/internal/execx"
	"github.com/fatmove/fatmove/internal/prompt"
)

// Elevator checks for and acquires root privileges.
type Elevator struct {
	Runner execx.Runner
	Prompt *prompt.Prompter
	Out    io.Writer

	// euid and execve are swappable for tests.
	euid   func() int
	execve func(argv0 string, argv []string, envv []string) error
}

// NewElevator creates an Elevator bound to the real process identity.
func NewElevator(runner execx.Runner, p *prompt.Prompter, out io.Writer) *Elevator {
	return &Elevator{
		Runner: runner,
		Prompt: p,
		Out:    out,
		euid:   os.Geteuid,
		execve: unix.Exec,
	}
}

// Ensure makes sure the process runs as root.
//
// Already-root returns true immediately. Otherwise the cached sudo
// credentials are probed with `sudo -n true`; without credentials a
// non-interactive run returns false. Any other path re-executes the
// same command line under sudo and does not return (the replacement
// process starts over as root). The cache policy decides whether sudo
// runs with -k, dropping the cached passphrase afterwards.
func (e *Elevator) Ensure(ctx context.Context, cache config.Policy, interactive, verbose bool) (bool, error) {
	if e.euid() == 0 {
		return true, nil
	}

	cached := e.Runner.Run(ctx, "sudo", "-n", "true") == nil
	if !interactive && !cached {
		return false, nil
	}

	var sudoArgs []string
	if !cached {
		keep := cache
		if keep == config.Prompt {
			if e.Prompt.YesNo("Remember root access passphrase?") {
				keep = config.Yes
			} else {
				keep = config.No
			}
		}
		if keep == config.No {
			sudoArgs = append(sudoArgs, "-k")
		}
	}

	if verbose {
		fmt.Fprintln(e.Out, "Restarting as root . . .")
	}
	if err := e.reexec(sudoArgs); err != nil {
		return false, err
	}
	return true, nil
}

// reexec replaces the current process with sudo running the same argv.
func (e *Elevator) reexec(sudoArgs []string) error {
	sudoPath, err := exec.LookPath("sudo")
	if err != nil {
		return fmt.Errorf("sudo not found: %w", err)
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate own binary: %w", err)
	}

	argv := append([]string{"sudo"}, sudoArgs...)
	argv = append(argv, exe)
	argv = append(argv, os.Args[1:]...)

	return e.execve(sudoPath, argv, os.Environ())
}
