// Package proc defines the process-spawning capability injected into the
// executor: split a recipe line into argv, run it, and report the outcome.
package proc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/google/shlex"
	pkgerrors "github.com/pkg/errors"
)

// Outcome is the result of running one recipe line to completion.
type Outcome struct {
	// ExitCode is the process's exit status; 0 means success.
	ExitCode int
	// Stderr is everything the process wrote to its standard error.
	Stderr string
}

// NotFoundError is returned instead of an Outcome when the recipe line's
// command could not be found (exec reports an *exec.Error, e.g. a failed
// PATH lookup), as opposed to running and exiting non-zero. Other start
// failures are returned as wrapped errors.
type NotFoundError struct {
	// Path is the command name or path that could not be found.
	Path string
}

func (e *NotFoundError) Error() string {
	return "command not found: " + e.Path
}

// Capability is the process-spawning primitive the executor depends on.
// Test suites inject a fake implementation that records invocations and
// returns scripted outcomes instead of spawning real processes.
type Capability interface {
	// Execute runs line (a full, already-expanded recipe command) with dir
	// as its working directory and returns its outcome.
	Execute(ctx context.Context, line string, dir string) (Outcome, error)

	// ExecuteAsync runs each of lines concurrently with dir as the working
	// directory for all of them, and returns one Outcome per line in the
	// same order. A single line's error does not stop the others from
	// running; callers inspect errs for the batch.
	ExecuteAsync(ctx context.Context, lines []string, dir string) (outcomes []Outcome, errs []error)
}

// DefaultCapability spawns real child processes via os/exec, splitting
// each recipe line into argv with shlex so quoting and escaping behave
// like a POSIX shell's word splitting.
type DefaultCapability struct{}

// New creates a DefaultCapability.
func New() *DefaultCapability {
	return &DefaultCapability{}
}

// Execute implements Capability.
func (c *DefaultCapability) Execute(ctx context.Context, line string, dir string) (Outcome, error) {
	argv, err := shlex.Split(line)
	if err != nil {
		return Outcome{}, pkgerrors.Wrapf(err, "splitting recipe line %q", line)
	}
	if len(argv) == 0 {
		return Outcome{}, nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir

	// Recipe stdout goes straight to rakego's own stdout, same as Make's
	// recipe lines inherit the invoking terminal. Stderr is teed so it is
	// both visible live and captured for FailedToExecuteError's detail.
	var stderr bytes.Buffer
	cmd.Stdout = os.Stdout
	cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)

	runErr := cmd.Run()
	if runErr == nil {
		return Outcome{ExitCode: 0, Stderr: stderr.String()}, nil
	}

	var notFound *exec.Error
	if errors.As(runErr, &notFound) {
		return Outcome{}, &NotFoundError{Path: argv[0]}
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return Outcome{ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}, nil
	}

	return Outcome{}, pkgerrors.Wrapf(runErr, "running %q", line)
}

// ExecuteAsync implements Capability by running every line concurrently
// and waiting for all of them, matching the teacher's batch-dispatch
// shape (one job's recipe is a batch, awaited as a unit).
func (c *DefaultCapability) ExecuteAsync(ctx context.Context, lines []string, dir string) ([]Outcome, []error) {
	outcomes := make([]Outcome, len(lines))
	errs := make([]error, len(lines))

	done := make(chan int, len(lines))
	for i, line := range lines {
		go func(i int, line string) {
			outcomes[i], errs[i] = c.Execute(ctx, line, dir)
			done <- i
		}(i, line)
	}
	for range lines {
		<-done
	}

	return outcomes, errs
}
