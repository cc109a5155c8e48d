// SPDX-License-Identifier: MPL-2.0

package manage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ScriptRunner executes deploy hook fragments with the embedded mvdan/sh
// interpreter. Scripts run under errexit, nounset, and pipefail: referencing
// an unset variable or a failing segment anywhere in a pipe chain fails the
// whole fragment, which in turn aborts the deploy.
type ScriptRunner struct {
	// Dir is the working directory for hook scripts.
	Dir string

	// Stdin, Stdout, Stderr are passed through to the script. Nil values
	// default to the hook's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewScriptRunner creates a ScriptRunner wired to the hook's own standard streams.
func NewScriptRunner(dir string) *ScriptRunner {
	return &ScriptRunner{
		Dir:    dir,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Validate parses the script to surface syntax errors before anything runs.
func (r *ScriptRunner) Validate(script string) error {
	if strings.TrimSpace(script) == "" {
		return fmt.Errorf("script has no content to execute")
	}
	_, err := syntax.NewParser().Parse(strings.NewReader(script), "script")
	if err != nil {
		return fmt.Errorf("script syntax error: %w", err)
	}
	return nil
}

// Run executes the script fragment and blocks until it finishes.
func (r *ScriptRunner) Run(ctx context.Context, script string) *Result {
	parser := syntax.NewParser()
	prog, err := parser.Parse(strings.NewReader(script), "script")
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to parse script: %w", err))
	}

	opts := []interp.RunnerOption{
		interp.Dir(r.Dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(r.Stdin, r.Stdout, r.Stderr),
		// set -e -u -o pipefail: the strict-pipeline contract for hooks
		interp.Params("-e", "-u", "-o", "pipefail"),
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to create interpreter: %w", err))
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return NewExitCodeResult(ExitCode(exitStatus))
		}
		return NewErrorResult(1, fmt.Errorf("script execution failed: %w", err))
	}

	return NewSuccessResult()
}
