// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for relhook.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"relhook/internal/config"
	"relhook/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables step-by-step progress logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// dryRun prints the step plan without executing anything
	dryRun bool

	// rootCmd represents the base command when called without any subcommands.
	// The deployment platform invokes relhook with zero arguments, so the
	// root command runs the hook directly.
	rootCmd = &cobra.Command{
		Use:   "relhook",
		Short: "Post-deploy hook for Django applications",
		Long: TitleStyle.Render("relhook") + SubtitleStyle.Render(" - post-deploy hook for Django applications") + `

relhook is the post-install hook a deployment platform runs after a
release lands. It changes into the application directory and runs the
management commands every Django deploy needs, in order:

  1. migrate --noinput         apply pending schema migrations
  2. collectstatic --noinput   aggregate static assets for serving

The hook is strictly fail-fast: the first failing step aborts the run
and its exit code becomes the process exit code, so the platform can
halt or roll back the deployment. The application directory comes from
the APP_DIR environment variable when set, else the configured default.

` + SubtitleStyle.Render("Examples:") + `
  relhook                   Run the deploy hook
  relhook run --dry-run     Print the step plan without executing
  relhook config show       Show current configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook(cmd.Context())
		},
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/relhook/config.cue)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "print the step plan without executing")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
