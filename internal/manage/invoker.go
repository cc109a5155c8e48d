// SPDX-License-Identifier: MPL-2.0

package manage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	// NoInputFlag suppresses interactive confirmation prompts in management
	// subcommands, as required for unattended execution.
	NoInputFlag = "--noinput"

	// SubcommandMigrate applies pending schema migrations.
	SubcommandMigrate = "migrate"
	// SubcommandCollectStatic aggregates static assets into the serving location.
	SubcommandCollectStatic = "collectstatic"
)

// ErrInterpreterNotFound is the sentinel error wrapped by InterpreterNotFoundError.
var ErrInterpreterNotFound = errors.New("interpreter not found")

type (
	// InterpreterNotFoundError is returned when the configured Python
	// interpreter does not exist or cannot be executed. Distinct from a
	// missing application directory so the two failure modes are
	// distinguishable in diagnostics.
	InterpreterNotFoundError struct {
		Path string
	}

	// Invoker runs management subcommands through the configured Python
	// interpreter. Each invocation is synchronous: Run blocks until the
	// child process terminates and reports its exit status.
	Invoker struct {
		// Interpreter is the Python interpreter path.
		Interpreter string
		// ManageScript is the management entry point passed to the interpreter.
		ManageScript string
		// AppDir is the child's working directory.
		AppDir string

		// Stdin, Stdout, Stderr are passed to the child untouched. Nil
		// values default to the hook's own streams.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}
)

// Error implements the error interface.
func (e *InterpreterNotFoundError) Error() string {
	return fmt.Sprintf("interpreter not found: %s", e.Path)
}

// Unwrap returns ErrInterpreterNotFound for errors.Is() compatibility.
func (e *InterpreterNotFoundError) Unwrap() error { return ErrInterpreterNotFound }

// NewInvoker creates an Invoker wired to the hook's own standard streams.
func NewInvoker(interpreter, manageScript, appDir string) *Invoker {
	return &Invoker{
		Interpreter:  interpreter,
		ManageScript: manageScript,
		AppDir:       appDir,
		Stdin:        os.Stdin,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
	}
}

// Run executes "interpreter manage.py <subcommand> --noinput" and blocks
// until the child exits. A non-zero child exit is a normal Result, not an
// Error; Error is reserved for failures to start the child at all.
func (i *Invoker) Run(ctx context.Context, subcommand string) *Result {
	cmd := exec.CommandContext(ctx, i.Interpreter, i.ManageScript, subcommand, NoInputFlag)
	cmd.Dir = i.AppDir
	cmd.Env = os.Environ()

	cmd.Stdin = i.Stdin
	cmd.Stdout = i.Stdout
	cmd.Stderr = i.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return NewExitCodeResult(ExitCode(exitErr.ExitCode()))
		}
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, exec.ErrNotFound) {
			// A not-found error can mean the interpreter or the working
			// directory; stat the interpreter to tell them apart.
			if _, statErr := os.Stat(i.Interpreter); statErr != nil {
				return NewErrorResult(1, &InterpreterNotFoundError{Path: i.Interpreter})
			}
		}
		return NewErrorResult(1, fmt.Errorf("failed to run %s %s: %w", i.ManageScript, subcommand, err))
	}

	return NewSuccessResult()
}
