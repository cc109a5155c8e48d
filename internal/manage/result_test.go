// SPDX-License-Identifier: MPL-2.0

package manage

import (
	"errors"
	"testing"
)

func TestExitCode_IsValid(t *testing.T) {
	tests := []struct {
		code ExitCode
		want bool
	}{
		{0, true},
		{1, true},
		{255, true},
		{-1, false},
		{256, false},
	}

	for _, tt := range tests {
		valid, errs := tt.code.IsValid()
		if valid != tt.want {
			t.Errorf("ExitCode(%d).IsValid() = %v, want %v", tt.code, valid, tt.want)
		}
		if !valid && !errors.Is(errs[0], ErrInvalidExitCode) {
			t.Errorf("ExitCode(%d).IsValid() error = %v, want ErrInvalidExitCode", tt.code, errs[0])
		}
	}
}

func TestExitCode_IsSuccess(t *testing.T) {
	if !ExitCode(0).IsSuccess() {
		t.Error("ExitCode(0).IsSuccess() = false, want true")
	}
	if ExitCode(1).IsSuccess() {
		t.Error("ExitCode(1).IsSuccess() = true, want false")
	}
}

func TestResult_IsSuccess(t *testing.T) {
	if !NewSuccessResult().IsSuccess() {
		t.Error("NewSuccessResult().IsSuccess() = false, want true")
	}
	if NewExitCodeResult(3).IsSuccess() {
		t.Error("NewExitCodeResult(3).IsSuccess() = true, want false")
	}
	if NewErrorResult(0, errors.New("boot failure")).IsSuccess() {
		t.Error("NewErrorResult(0, err).IsSuccess() = true, want false")
	}
}
