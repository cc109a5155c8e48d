// SPDX-License-Identifier: MPL-2.0

package deploy

import (
	"context"
	"fmt"

	"relhook/internal/config"
	"relhook/internal/manage"

	"github.com/charmbracelet/log"
)

type (
	// SubcommandRunner invokes one management subcommand and blocks until it
	// terminates. Satisfied by *manage.Invoker; tests supply a recording fake.
	SubcommandRunner interface {
		Run(ctx context.Context, subcommand string) *manage.Result
	}

	// HookRunner executes one hook script fragment and blocks until it
	// finishes. Satisfied by *manage.ScriptRunner.
	HookRunner interface {
		Run(ctx context.Context, script string) *manage.Result
	}

	// PlanOptions configures pipeline construction from a resolved Config.
	// Nil Invoker and Hooks fields get production implementations wired to
	// the config's interpreter, entry point, and application directory.
	PlanOptions struct {
		Config  *config.Config
		Invoker SubcommandRunner
		Hooks   HookRunner
		Logger  *log.Logger
	}
)

// NewPlan builds the deploy pipeline for a resolved configuration. The step
// order is fixed: pre-hook (when configured), migrate, collectstatic,
// post-hook (when configured). Migration always strictly precedes static
// asset collection.
func NewPlan(opts PlanOptions) (*Pipeline, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("NewPlan: Config must not be nil")
	}
	if valid, errs := cfg.IsValid(); !valid {
		return nil, errs[0]
	}

	invoker := opts.Invoker
	if invoker == nil {
		invoker = manage.NewInvoker(string(cfg.Interpreter), cfg.ManageScript, string(cfg.AppDir))
	}

	hooks := opts.Hooks
	if hooks == nil {
		hooks = manage.NewScriptRunner(string(cfg.AppDir))
	}

	var steps []Step

	if cfg.Hooks.Pre != "" {
		pre := cfg.Hooks.Pre
		steps = append(steps, Step{
			Name: StepPreHook,
			Run: func(ctx context.Context) *manage.Result {
				return hooks.Run(ctx, pre)
			},
		})
	}

	steps = append(steps,
		Step{
			Name: StepMigrate,
			Run: func(ctx context.Context) *manage.Result {
				return invoker.Run(ctx, manage.SubcommandMigrate)
			},
		},
		Step{
			Name: StepCollectStatic,
			Run: func(ctx context.Context) *manage.Result {
				return invoker.Run(ctx, manage.SubcommandCollectStatic)
			},
		},
	)

	if cfg.Hooks.Post != "" {
		post := cfg.Hooks.Post
		steps = append(steps, Step{
			Name: StepPostHook,
			Run: func(ctx context.Context) *manage.Result {
				return hooks.Run(ctx, post)
			},
		})
	}

	return NewPipeline(opts.Logger, steps...)
}
