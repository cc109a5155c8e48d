// SPDX-License-Identifier: MPL-2.0

// Package config handles relhook configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/relhook/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/relhook/config.cue on macOS, %APPDATA%\relhook\config.cue
// on Windows). The file is optional: without it the built-in defaults describe a
// conventional containerized Django deployment (/usr/bin/python3, /app, manage.py).
//
// Exactly one environment variable participates in resolution: APP_DIR overrides the
// application directory when set and non-empty. Variables listed in require_env are
// checked before any deploy step runs and abort the hook when unset.
//
// Configuration files are validated against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
