// SPDX-License-Identifier: MPL-2.0

package deploy

import (
	"context"
	"errors"
	"fmt"

	"relhook/internal/manage"
)

// ErrInvalidStepName is the sentinel error wrapped by InvalidStepNameError.
var ErrInvalidStepName = errors.New("invalid step name")

const (
	// StepPreHook runs the configured pre-hook shell fragment.
	StepPreHook StepName = "pre-hook"
	// StepMigrate applies pending schema migrations.
	StepMigrate StepName = "migrate"
	// StepCollectStatic aggregates static assets for serving.
	StepCollectStatic StepName = "collectstatic"
	// StepPostHook runs the configured post-hook shell fragment.
	StepPostHook StepName = "post-hook"
)

type (
	// StepName identifies a deploy step.
	StepName string

	// InvalidStepNameError is returned when a StepName value is not recognized.
	// It wraps ErrInvalidStepName for errors.Is() compatibility.
	InvalidStepNameError struct {
		Value StepName
	}

	// Step is one unit of the deploy pipeline: a name plus a blocking run
	// function that reports the step's exit status.
	Step struct {
		Name StepName
		Run  func(ctx context.Context) *manage.Result
	}
)

// Error implements the error interface.
func (e *InvalidStepNameError) Error() string {
	return fmt.Sprintf("invalid step name %q", string(e.Value))
}

// Unwrap returns ErrInvalidStepName for errors.Is() compatibility.
func (e *InvalidStepNameError) Unwrap() error { return ErrInvalidStepName }

// IsValid returns whether the StepName is one of the recognized steps,
// and a list of validation errors if it is not.
func (n StepName) IsValid() (bool, []error) {
	switch n {
	case StepPreHook, StepMigrate, StepCollectStatic, StepPostHook:
		return true, nil
	default:
		return false, []error{&InvalidStepNameError{Value: n}}
	}
}

// String returns the step name as a plain string.
func (n StepName) String() string { return string(n) }
