// SPDX-License-Identifier: MPL-2.0

package manage

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func newTestScriptRunner(t *testing.T) (*ScriptRunner, *bytes.Buffer) {
	t.Helper()

	var stdout bytes.Buffer
	r := &ScriptRunner{
		Dir:    t.TempDir(),
		Stdout: &stdout,
		Stderr: &bytes.Buffer{},
	}
	return r, &stdout
}

func TestScriptRunner_RunSuccess(t *testing.T) {
	r, stdout := newTestScriptRunner(t)

	result := r.Run(context.Background(), `echo "hook ran"`)
	if !result.IsSuccess() {
		t.Fatalf("Run() result = %+v, want success", result)
	}
	if got := strings.TrimSpace(stdout.String()); got != "hook ran" {
		t.Errorf("Run() output = %q, want %q", got, "hook ran")
	}
}

func TestScriptRunner_ExitStatusPropagates(t *testing.T) {
	r, _ := newTestScriptRunner(t)

	result := r.Run(context.Background(), "exit 7")
	if result.ExitCode != 7 {
		t.Errorf("Run() exit code = %d, want 7", result.ExitCode)
	}
}

func TestScriptRunner_PipefailFailsWholeChain(t *testing.T) {
	// Without pipefail this would succeed because the last segment exits 0.
	r, _ := newTestScriptRunner(t)

	result := r.Run(context.Background(), "false | true")
	if result.IsSuccess() {
		t.Error("Run(\"false | true\") succeeded, want pipefail failure")
	}
}

func TestScriptRunner_UnsetVariableIsFatal(t *testing.T) {
	r, _ := newTestScriptRunner(t)

	result := r.Run(context.Background(), `echo "$RELHOOK_TEST_UNSET_VARIABLE"`)
	if result.IsSuccess() {
		t.Error("Run() with unset variable reference succeeded, want nounset failure")
	}
}

func TestScriptRunner_ErrexitStopsAtFirstFailure(t *testing.T) {
	r, stdout := newTestScriptRunner(t)

	result := r.Run(context.Background(), "echo first\nfalse\necho second")
	if result.IsSuccess() {
		t.Fatal("Run() succeeded, want errexit failure")
	}
	if strings.Contains(stdout.String(), "second") {
		t.Errorf("Run() output = %q, later command ran after failure", stdout.String())
	}
}

func TestScriptRunner_Validate(t *testing.T) {
	r, _ := newTestScriptRunner(t)

	if err := r.Validate(`echo ok`); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := r.Validate(""); err == nil {
		t.Error("Validate(\"\") error = nil, want error for empty script")
	}
	if err := r.Validate("if then fi"); err == nil {
		t.Error("Validate() error = nil, want syntax error")
	}
}
