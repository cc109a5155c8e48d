// SPDX-License-Identifier: MPL-2.0

package deploy

import (
	"context"
	"fmt"

	"relhook/internal/manage"

	"github.com/charmbracelet/log"
)

// Pipeline is an ordered, fail-fast sequence of deploy steps. Steps run one
// at a time in declaration order; the first step whose result is not a
// success stops the run and no later step executes.
type Pipeline struct {
	steps  []Step
	logger *log.Logger
}

// NewPipeline creates a Pipeline after validating every step. A nil logger
// disables progress logging.
func NewPipeline(logger *log.Logger, steps ...Step) (*Pipeline, error) {
	for i, step := range steps {
		if valid, errs := step.Name.IsValid(); !valid {
			return nil, fmt.Errorf("step %d: %w", i, errs[0])
		}
		if step.Run == nil {
			return nil, fmt.Errorf("step %d (%s): run function must not be nil", i, step.Name)
		}
	}
	return &Pipeline{steps: steps, logger: logger}, nil
}

// StepNames returns the ordered step names, for plan display.
func (p *Pipeline) StepNames() []StepName {
	names := make([]StepName, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name
	}
	return names
}

// Run executes the pipeline and returns the result of the last step that ran
// together with its name. On success the returned result is the final
// step's; on failure it is the first failing step's, and the failing step's
// exit code is what the process must exit with.
func (p *Pipeline) Run(ctx context.Context) (*manage.Result, StepName) {
	var (
		result   = manage.NewSuccessResult()
		lastName StepName
	)

	for _, step := range p.steps {
		lastName = step.Name
		if p.logger != nil {
			p.logger.Debug("running step", "step", step.Name)
		}

		result = step.Run(ctx)
		if !result.IsSuccess() {
			if p.logger != nil {
				p.logger.Error("step failed", "step", step.Name, "exit_code", result.ExitCode, "err", result.Error)
			}
			return result, lastName
		}

		if p.logger != nil {
			p.logger.Debug("step succeeded", "step", step.Name)
		}
	}

	return result, lastName
}
