// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// DefaultInterpreter is the Python interpreter used when no config file
	// overrides it. The conventional system interpreter of a deploy image.
	DefaultInterpreter = "/usr/bin/python3"
	// DefaultAppDir is the application directory used when neither the
	// APP_DIR environment variable nor a config file overrides it.
	DefaultAppDir = "/app"
	// DefaultManageScript is the Django management entry point, resolved
	// relative to the application directory unless absolute.
	DefaultManageScript = "manage.py"

	// AppDirEnvVar is the one environment variable allowed to override
	// configuration silently. Every other variable the hook depends on must
	// be declared in require_env and is checked strictly before any step runs.
	AppDirEnvVar = "APP_DIR"
)

var (
	// ErrInvalidInterpreterPath is the sentinel error wrapped by InvalidInterpreterPathError.
	ErrInvalidInterpreterPath = errors.New("invalid interpreter path")
	// ErrInvalidAppDirPath is the sentinel error wrapped by InvalidAppDirPathError.
	ErrInvalidAppDirPath = errors.New("invalid application directory path")
	// ErrInvalidEnvVarName is the sentinel error wrapped by InvalidEnvVarNameError.
	ErrInvalidEnvVarName = errors.New("invalid environment variable name")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// InterpreterPath is the filesystem path of the Python interpreter that
	// runs the management entry point. Must be non-empty and not
	// whitespace-only.
	InterpreterPath string

	// InvalidInterpreterPathError is returned when an InterpreterPath value is
	// empty or whitespace-only. It wraps ErrInvalidInterpreterPath for errors.Is().
	InvalidInterpreterPathError struct {
		Value InterpreterPath
	}

	// AppDirPath is the filesystem path of the application directory the hook
	// changes into before invoking any management subcommand. Must be
	// non-empty and not whitespace-only; existence is checked separately at
	// run time, not here.
	AppDirPath string

	// InvalidAppDirPathError is returned when an AppDirPath value is empty or
	// whitespace-only. It wraps ErrInvalidAppDirPath for errors.Is().
	InvalidAppDirPathError struct {
		Value AppDirPath
	}

	// EnvVarName is the name of an environment variable the hook requires to
	// be set before running. Must be non-empty without '=' or whitespace.
	EnvVarName string

	// InvalidEnvVarNameError is returned when an EnvVarName value is malformed.
	// It wraps ErrInvalidEnvVarName for errors.Is() compatibility.
	InvalidEnvVarNameError struct {
		Value EnvVarName
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// HooksConfig holds optional shell fragments executed around the
	// management steps by the embedded shell interpreter.
	HooksConfig struct {
		// Pre runs before the migrate step. Empty means no pre-hook.
		Pre string `json:"pre" mapstructure:"pre"`
		// Post runs after the collectstatic step. Empty means no post-hook.
		Post string `json:"post" mapstructure:"post"`
	}

	// UIConfig configures diagnostic output.
	UIConfig struct {
		// Verbose enables step-by-step progress logging on stderr.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// Config holds the deploy hook configuration. Values are resolved once at
	// process start and never mutated afterwards.
	Config struct {
		// Interpreter is the Python interpreter path.
		Interpreter InterpreterPath `json:"interpreter" mapstructure:"interpreter"`
		// AppDir is the application directory the hook changes into.
		AppDir AppDirPath `json:"app_dir" mapstructure:"app_dir"`
		// ManageScript is the management entry point, relative to AppDir
		// unless absolute.
		ManageScript string `json:"manage_script" mapstructure:"manage_script"`
		// RequireEnv lists environment variables that must be set and
		// non-empty before any step runs.
		RequireEnv []EnvVarName `json:"require_env" mapstructure:"require_env"`
		// Hooks configures optional pre/post shell fragments.
		Hooks HooksConfig `json:"hooks" mapstructure:"hooks"`
		// UI configures diagnostic output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}
)

// DefaultConfig returns the built-in configuration for a conventional
// containerized Django deployment.
func DefaultConfig() *Config {
	return &Config{
		Interpreter:  DefaultInterpreter,
		AppDir:       DefaultAppDir,
		ManageScript: DefaultManageScript,
	}
}

// Error implements the error interface.
func (e *InvalidInterpreterPathError) Error() string {
	return fmt.Sprintf("invalid interpreter path %q (must be non-empty)", string(e.Value))
}

// Unwrap returns ErrInvalidInterpreterPath for errors.Is() compatibility.
func (e *InvalidInterpreterPathError) Unwrap() error { return ErrInvalidInterpreterPath }

// Error implements the error interface.
func (e *InvalidAppDirPathError) Error() string {
	return fmt.Sprintf("invalid application directory path %q (must be non-empty)", string(e.Value))
}

// Unwrap returns ErrInvalidAppDirPath for errors.Is() compatibility.
func (e *InvalidAppDirPathError) Unwrap() error { return ErrInvalidAppDirPath }

// Error implements the error interface.
func (e *InvalidEnvVarNameError) Error() string {
	return fmt.Sprintf("invalid environment variable name %q", string(e.Value))
}

// Unwrap returns ErrInvalidEnvVarName for errors.Is() compatibility.
func (e *InvalidEnvVarNameError) Unwrap() error { return ErrInvalidEnvVarName }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// IsValid returns whether the InterpreterPath is non-empty and not
// whitespace-only, and a list of validation errors if it is not.
func (p InterpreterPath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidInterpreterPathError{Value: p}}
	}
	return true, nil
}

// String returns the path as a plain string.
func (p InterpreterPath) String() string { return string(p) }

// IsValid returns whether the AppDirPath is non-empty and not
// whitespace-only, and a list of validation errors if it is not.
func (p AppDirPath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidAppDirPathError{Value: p}}
	}
	return true, nil
}

// String returns the path as a plain string.
func (p AppDirPath) String() string { return string(p) }

// IsValid returns whether the EnvVarName is non-empty and free of '=' and
// whitespace, and a list of validation errors if it is not.
func (n EnvVarName) IsValid() (bool, []error) {
	s := string(n)
	if s == "" || strings.ContainsAny(s, "= \t\n") {
		return false, []error{&InvalidEnvVarNameError{Value: n}}
	}
	return true, nil
}

// String returns the name as a plain string.
func (n EnvVarName) String() string { return string(n) }

// IsValid returns whether the Config has valid fields, and a consolidated
// InvalidConfigError listing every field-level failure if it does not.
func (c *Config) IsValid() (bool, []error) {
	var fieldErrs []error
	if valid, errs := c.Interpreter.IsValid(); !valid {
		fieldErrs = append(fieldErrs, errs...)
	}
	if valid, errs := c.AppDir.IsValid(); !valid {
		fieldErrs = append(fieldErrs, errs...)
	}
	if strings.TrimSpace(c.ManageScript) == "" {
		fieldErrs = append(fieldErrs, fmt.Errorf("manage_script must not be empty"))
	}
	for _, name := range c.RequireEnv {
		if valid, errs := name.IsValid(); !valid {
			fieldErrs = append(fieldErrs, errs...)
		}
	}
	if len(fieldErrs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: fieldErrs}}
	}
	return true, nil
}

// ManageScriptAbs returns the absolute location of the management entry
// point. Relative values resolve against AppDir, matching how the subprocess
// sees them once its working directory is set.
func (c *Config) ManageScriptAbs() string {
	if filepath.IsAbs(c.ManageScript) {
		return c.ManageScript
	}
	return filepath.Join(string(c.AppDir), c.ManageScript)
}
