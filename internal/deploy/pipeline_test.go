// SPDX-License-Identifier: MPL-2.0

package deploy

import (
	"context"
	"errors"
	"testing"

	"relhook/internal/manage"
)

// stubStep returns a Step that records its execution order and returns the
// given result.
func stubStep(name StepName, result *manage.Result, ran *[]StepName) Step {
	return Step{
		Name: name,
		Run: func(ctx context.Context) *manage.Result {
			*ran = append(*ran, name)
			return result
		},
	}
}

func TestPipeline_RunsStepsInOrder(t *testing.T) {
	var ran []StepName

	p, err := NewPipeline(nil,
		stubStep(StepMigrate, manage.NewSuccessResult(), &ran),
		stubStep(StepCollectStatic, manage.NewSuccessResult(), &ran),
	)
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}

	result, last := p.Run(context.Background())
	if !result.IsSuccess() {
		t.Errorf("Run() result = %+v, want success", result)
	}
	if last != StepCollectStatic {
		t.Errorf("Run() last step = %s, want %s", last, StepCollectStatic)
	}

	if len(ran) != 2 || ran[0] != StepMigrate || ran[1] != StepCollectStatic {
		t.Errorf("Run() executed %v, want [%s %s]", ran, StepMigrate, StepCollectStatic)
	}
}

func TestPipeline_StopsAtFirstFailure(t *testing.T) {
	var ran []StepName

	p, err := NewPipeline(nil,
		stubStep(StepMigrate, manage.NewExitCodeResult(3), &ran),
		stubStep(StepCollectStatic, manage.NewSuccessResult(), &ran),
	)
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}

	result, failed := p.Run(context.Background())
	if result.ExitCode != 3 {
		t.Errorf("Run() exit code = %d, want 3", result.ExitCode)
	}
	if failed != StepMigrate {
		t.Errorf("Run() failing step = %s, want %s", failed, StepMigrate)
	}

	if len(ran) != 1 || ran[0] != StepMigrate {
		t.Errorf("Run() executed %v, want only [%s]", ran, StepMigrate)
	}
}

func TestPipeline_SecondStepFailurePropagates(t *testing.T) {
	var ran []StepName

	p, err := NewPipeline(nil,
		stubStep(StepMigrate, manage.NewSuccessResult(), &ran),
		stubStep(StepCollectStatic, manage.NewExitCodeResult(5), &ran),
	)
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}

	result, failed := p.Run(context.Background())
	if result.ExitCode != 5 {
		t.Errorf("Run() exit code = %d, want 5", result.ExitCode)
	}
	if failed != StepCollectStatic {
		t.Errorf("Run() failing step = %s, want %s", failed, StepCollectStatic)
	}
	if len(ran) != 2 {
		t.Errorf("Run() executed %v, want both steps", ran)
	}
}

func TestPipeline_ErrorResultStopsRun(t *testing.T) {
	var ran []StepName
	infraErr := errors.New("interpreter missing")

	p, err := NewPipeline(nil,
		stubStep(StepMigrate, manage.NewErrorResult(1, infraErr), &ran),
		stubStep(StepCollectStatic, manage.NewSuccessResult(), &ran),
	)
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}

	result, _ := p.Run(context.Background())
	if !errors.Is(result.Error, infraErr) {
		t.Errorf("Run() error = %v, want %v", result.Error, infraErr)
	}
	if len(ran) != 1 {
		t.Errorf("Run() executed %v, want only the failing step", ran)
	}
}

func TestNewPipeline_RejectsInvalidStepName(t *testing.T) {
	_, err := NewPipeline(nil, Step{
		Name: "reticulate",
		Run:  func(ctx context.Context) *manage.Result { return manage.NewSuccessResult() },
	})
	if !errors.Is(err, ErrInvalidStepName) {
		t.Errorf("NewPipeline() error = %v, want ErrInvalidStepName", err)
	}
}

func TestNewPipeline_RejectsNilRun(t *testing.T) {
	_, err := NewPipeline(nil, Step{Name: StepMigrate})
	if err == nil {
		t.Error("NewPipeline() error = nil, want error for nil run function")
	}
}
