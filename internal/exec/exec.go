// Package exec abstracts external command execution so the git layer
// can be tested without a real git binary.
package exec

import (
	"bytes"
	"errors"
	"fmt"
	osexec "os/exec"
	"strings"
)

// IsExitError reports whether err wraps an *exec.ExitError.
func IsExitError(err error) bool {
	var exitErr *osexec.ExitError
	return errors.As(err, &exitErr)
}

// IsExitCode reports whether err wraps an *exec.ExitError with the given exit code.
func IsExitCode(err error, code int) bool {
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode() == code
	}
	return false
}

// Runner abstracts command execution for testing.
type Runner interface {
	// Output runs name with args in dir and returns stdout.
	Output(dir, name string, args ...string) (string, error)

	// Run runs name with args in dir, discarding stdout.
	Run(dir, name string, args ...string) error
}

var _ Runner = (*DefaultRunner)(nil)

// DefaultRunner implements Runner using os/exec.
type DefaultRunner struct{}

func NewDefaultRunner() *DefaultRunner {
	return &DefaultRunner{}
}

func (r *DefaultRunner) Output(dir, name string, args ...string) (string, error) {
	cmd := osexec.Command(name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", wrapRunError(name, args, err, stderr.String())
	}
	return stdout.String(), nil
}

func (r *DefaultRunner) Run(dir, name string, args ...string) error {
	_, err := r.Output(dir, name, args...)
	return err
}

// wrapRunError folds captured stderr into the error so callers can surface
// the underlying tool's message directly.
func wrapRunError(name string, args []string, err error, stderr string) error {
	msg := strings.TrimSpace(stderr)
	if msg != "" {
		return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, msg)
	}
	return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
}
