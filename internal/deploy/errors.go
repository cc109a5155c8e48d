// SPDX-License-Identifier: MPL-2.0

package deploy

import (
	"errors"
	"fmt"

	"relhook/internal/config"
)

var (
	// ErrRequiredEnvUnset is the sentinel error wrapped by RequiredEnvError.
	ErrRequiredEnvUnset = errors.New("required environment variable not set")
	// ErrAppDirUnusable is the sentinel error wrapped by AppDirError.
	ErrAppDirUnusable = errors.New("application directory not usable")
)

type (
	// RequiredEnvError is returned when a variable listed in require_env is
	// unset or empty. It wraps ErrRequiredEnvUnset for errors.Is() compatibility.
	RequiredEnvError struct {
		Name config.EnvVarName
	}

	// AppDirError is returned when the application directory does not exist,
	// is not a directory, or cannot be entered. It wraps ErrAppDirUnusable
	// for errors.Is() compatibility.
	AppDirError struct {
		Path  config.AppDirPath
		Cause error
	}
)

// Error implements the error interface.
func (e *RequiredEnvError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", e.Name)
}

// Unwrap returns ErrRequiredEnvUnset for errors.Is() compatibility.
func (e *RequiredEnvError) Unwrap() error { return ErrRequiredEnvUnset }

// Error implements the error interface.
func (e *AppDirError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("application directory %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("application directory %s is not usable", e.Path)
}

// Unwrap returns ErrAppDirUnusable for errors.Is() compatibility.
func (e *AppDirError) Unwrap() error { return ErrAppDirUnusable }
