// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"sync"
)

var (
	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// configFileOverride holds the --config flag value for the CLI layer.
	configFileOverride string

	cacheMu   sync.Mutex
	cachedCfg *Config
)

// Reset clears test overrides and the cached config. Call from test cleanup
// to restore defaults.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	configDirOverride = ""
	configFileOverride = ""
	cachedCfg = nil
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	configDirOverride = dir
	cachedCfg = nil
}

// SetConfigFilePathOverride forces subsequent Load calls to read a specific
// config file. Used by the CLI --config flag.
func SetConfigFilePathOverride(path string) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	configFileOverride = path
	cachedCfg = nil
}

// Load loads the configuration once and caches it for the process lifetime.
// Configuration values are immutable after resolution.
func Load() (*Config, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cachedCfg != nil {
		return cachedCfg, nil
	}

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFileOverride,
		ConfigDirPath:  configDirOverride,
	})
	if err != nil {
		return nil, err
	}

	cachedCfg = cfg
	return cfg, nil
}

// Get returns the cached configuration, loading it on first use. Loading
// errors fall back to the built-in defaults so read-only callers always get
// a usable config; callers that care about load failures use Load.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
