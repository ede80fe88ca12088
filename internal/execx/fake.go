package execx

import (
	"context"
	"strings"
)

// FakeRunner records invocations and returns scripted results. It is
// shared by tests across packages.
type FakeRunner struct {
	// Calls holds every command line executed, in order.
	Calls []string

	// Outputs maps a full command line to the stdout Output returns.
	Outputs map[string]string

	// Errs maps a full command line to the error Run/Output return.
	Errs map[string]error

	// Missing holds binary names LookPath should report as absent.
	Missing map[string]bool
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Outputs: map[string]string{},
		Errs:    map[string]error{},
		Missing: map[string]bool{},
	}
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// Run records the command line and returns its scripted error.
func (r *FakeRunner) Run(_ context.Context, name string, args ...string) error {
	line := commandLine(name, args)
	r.Calls = append(r.Calls, line)
	return r.Errs[line]
}

// Output records the command line and returns its scripted stdout.
func (r *FakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	line := commandLine(name, args)
	r.Calls = append(r.Calls, line)
	return r.Outputs[line], r.Errs[line]
}

// LookPath reports false for names listed in Missing.
func (r *FakeRunner) LookPath(name string) bool {
	return !r.Missing[name]
}
