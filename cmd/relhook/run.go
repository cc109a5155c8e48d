// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"relhook/internal/config"
	"relhook/internal/deploy"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runCmd is an explicit alias for the root invocation: deployment platforms
// call the binary with zero arguments, operators can call `relhook run`.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the deploy hook (migrate, then collectstatic)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHook(cmd.Context())
	},
}

// runHook resolves configuration, validates the environment, and executes
// the deploy pipeline. Every failure path returns an ExitError so the
// failing step's exit code propagates to the deployment platform.
func runHook(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	logger := newLogger()

	plan, err := deploy.NewPlan(deploy.PlanOptions{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	if dryRun {
		printPlan(cfg, plan)
		return nil
	}

	// Strict preflight: required variables and the application directory are
	// checked before the first subcommand runs.
	if err := deploy.Preflight(cfg, nil); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	logger.Debug("starting deploy",
		"interpreter", cfg.Interpreter,
		"app_dir", cfg.AppDir,
		"manage_script", cfg.ManageScript,
	)

	result, step := plan.Run(ctx)
	if !result.IsSuccess() {
		if result.Error != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(result.Error, verbose))
		}
		code := result.ExitCode
		if code.IsSuccess() {
			// Infrastructure failure without a child exit status.
			code = 1
		}
		return &ExitError{Code: code, Err: fmt.Errorf("step %s failed with exit status %s", step, code)}
	}

	logger.Debug("deploy finished", "last_step", step)
	return nil
}

// printPlan renders the ordered step list without executing anything.
func printPlan(cfg *config.Config, plan *deploy.Pipeline) {
	fmt.Println(TitleStyle.Render("Deploy plan") + SubtitleStyle.Render(" (dry run, nothing executed)"))
	fmt.Printf("  interpreter:   %s\n", cfg.Interpreter)
	fmt.Printf("  app directory: %s\n", cfg.AppDir)
	fmt.Printf("  entry point:   %s\n", cfg.ManageScript)
	fmt.Println()
	for i, name := range plan.StepNames() {
		fmt.Printf("  %d. %s\n", i+1, StepStyle.Render(name.String()))
	}
}

// newLogger builds the stderr progress logger. Quiet by default: step
// progress only appears with --verbose, and child process output always
// passes through untouched.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
