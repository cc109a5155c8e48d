// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	cause := errors.New("no such file or directory")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("/srv/app/config.cue").
		Wrap(cause).
		Build()

	want := "failed to load configuration: /srv/app/config.cue: no such file or directory"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestActionableError_FormatSuggestions(t *testing.T) {
	err := NewErrorContext().
		WithOperation("resolve application directory").
		WithSuggestion("Set APP_DIR to the release directory").
		WithSuggestion("Check the deploy image layout").
		Build()

	out := err.Format(false)
	if !strings.Contains(out, "Set APP_DIR to the release directory") {
		t.Errorf("Format() = %q, missing first suggestion", out)
	}
	if !strings.Contains(out, "Check the deploy image layout") {
		t.Errorf("Format() = %q, missing second suggestion", out)
	}
}

func TestActionableError_FormatVerboseShowsChain(t *testing.T) {
	inner := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("run migrate").
		Wrap(inner).
		Build()

	if out := err.Format(true); !strings.Contains(out, "Error chain:") {
		t.Errorf("Format(true) = %q, missing error chain", out)
	}
	if out := err.Format(false); strings.Contains(out, "Error chain:") {
		t.Errorf("Format(false) = %q, unexpected error chain", out)
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestWrapWithOperation(t *testing.T) {
	if WrapWithOperation(nil, "anything") != nil {
		t.Error("WrapWithOperation(nil) != nil, want nil")
	}

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "run collectstatic")
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}
