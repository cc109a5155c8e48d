// SPDX-License-Identifier: MPL-2.0

package deploy

import (
	"fmt"
	"os"

	"relhook/internal/config"
)

// Preflight validates the environment before any step runs. It enforces the
// strict-variable contract (every require_env entry set and non-empty) and
// confirms the application directory exists and is enterable. Any failure
// here aborts the deploy before the first subcommand is invoked.
//
// lookupEnv is the injected environment-lookup capability; nil means
// os.LookupEnv.
func Preflight(cfg *config.Config, lookupEnv func(string) (string, bool)) error {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	for _, name := range cfg.RequireEnv {
		if val, ok := lookupEnv(string(name)); !ok || val == "" {
			return &RequiredEnvError{Name: name}
		}
	}

	info, err := os.Stat(string(cfg.AppDir))
	if err != nil {
		return &AppDirError{Path: cfg.AppDir, Cause: err}
	}
	if !info.IsDir() {
		return &AppDirError{Path: cfg.AppDir, Cause: fmt.Errorf("not a directory")}
	}

	return nil
}
