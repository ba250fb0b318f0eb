package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	m "cobble.dev/pkg/cobble/internal/model"
)

// ErrExecutableNotFound reports that the compiler binary could not be
// spawned because it does not exist.
var ErrExecutableNotFound = errors.New("compiler executable not found")

// CompileRunner abstracts external compiler execution so the compile
// coordinator can be tested without a toolchain installed.
type CompileRunner interface {
	// Run executes the request synchronously and returns the captured
	// stdout, stderr, and process exit code. Spawn failures are
	// returned as errors; a missing executable is reported as
	// ErrExecutableNotFound. The call blocks until the compiler exits.
	Run(ctx context.Context, req m.CompileRequest) (stdout, stderr string, exitCode int, err error)
}

// LocalCompileRunner provides a concrete implementation using os/exec.
type LocalCompileRunner struct{}

// NewLocalCompileRunner constructs a LocalCompileRunner.
func NewLocalCompileRunner() *LocalCompileRunner {
	return &LocalCompileRunner{}
}

// Run executes the resolved compiler invocation. No timeout is imposed;
// the external process runs to completion.
func (r *LocalCompileRunner) Run(ctx context.Context, req m.CompileRequest) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, req.Executable, req.Args...)
	cmd.Env = req.Env

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), stderr.String(), exitErr.ExitCode(), nil
		}

		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return "", "", -1, fmt.Errorf("%w: %s", ErrExecutableNotFound, req.Executable)
		}

		return "", "", -1, err
	}

	return stdout.String(), stderr.String(), 0, nil
}
