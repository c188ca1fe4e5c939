package npm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/google/uuid"
)

// ProductionFlag makes npm skip devDependencies.
const ProductionFlag = "--production"

// InstallArgs returns the installer arguments for the given install mode.
func InstallArgs(devMode bool) []string {
	if devMode {
		return []string{"install"}
	}
	return []string{"install", ProductionFlag}
}

// Result holds the outcome of one installer invocation.
type Result struct {
	RunID    string        // unique identifier for this run
	ExitCode int           // process exit code
	Output   []byte        // combined stdout and stderr
	Duration time.Duration // wall time of the invocation
}

// Success reports whether the installer exited with status zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Runner invokes an executable in a directory and waits for it.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (*Result, error)
}

// ExecRunner implements Runner using os/exec. The child inherits the
// environment and runs in dir; the current process never changes directory.
type ExecRunner struct {
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// NewExecRunner creates an ExecRunner with the default exec.CommandContext.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{execCommand: exec.CommandContext}
}

// Verify ExecRunner implements Runner.
var _ Runner = (*ExecRunner)(nil)

// Run executes name with args in dir. A non-zero exit is reported in the
// Result, not as an error; an error means the process could not run at all.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Result, error) {
	cmd := r.execCommand(ctx, name, args...)
	cmd.Dir = dir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	start := time.Now()
	runErr := cmd.Run()

	result := &Result{
		RunID:    uuid.New().String(),
		Output:   output.Bytes(),
		Duration: time.Since(start),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, fmt.Errorf("executing %s in %s: %w", name, dir, runErr)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}
