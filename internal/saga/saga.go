package saga

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Compensation undoes the persistent effect of a completed step.
// A step may return nil when it has nothing to undo.
type Compensation[S any] func(ctx context.Context, state *S) error

type Step[S any] interface {
	Name() string

	// Run executes the step against the shared state and returns the
	// compensation for whatever it persisted.
	Run(ctx context.Context, state *S) (Compensation[S], error)
}

type stepFunc[S any] struct {
	name string
	run  func(ctx context.Context, state *S) (Compensation[S], error)
}

func (s stepFunc[S]) Name() string { return s.name }

func (s stepFunc[S]) Run(ctx context.Context, state *S) (Compensation[S], error) {
	return s.run(ctx, state)
}

// NewStep wraps a function as a named Step.
func NewStep[S any](name string, run func(ctx context.Context, state *S) (Compensation[S], error)) (Step[S], error) {
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}
	if run == nil {
		return nil, fmt.Errorf("run is nil")
	}

	return stepFunc[S]{name: name, run: run}, nil
}

// Coordinator runs steps in order. When a step fails, the compensations of
// all completed steps run in reverse order and the step's error is returned.
type Coordinator[S any] struct {
	name   string
	steps  []Step[S]
	logger zerolog.Logger
}

func NewCoordinator[S any](name string, logger zerolog.Logger, steps ...Step[S]) (Coordinator[S], error) {
	var c Coordinator[S]

	if name == "" {
		return c, fmt.Errorf("name is empty")
	}
	if len(steps) == 0 {
		return c, fmt.Errorf("steps are empty")
	}
	for i, step := range steps {
		if step == nil {
			return c, fmt.Errorf("step[%d] is nil", i)
		}
	}

	return Coordinator[S]{
		name:   name,
		steps:  steps,
		logger: logger.With().Str("saga", name).Logger(),
	}, nil
}

type completed[S any] struct {
	name       string
	compensate Compensation[S]
}

func (c Coordinator[S]) Run(ctx context.Context, state *S) error {
	if state == nil {
		return fmt.Errorf("state is nil")
	}

	var done []completed[S]

	for idx, step := range c.steps {
		compensate, err := step.Run(ctx, state)
		if err != nil {
			c.unwind(ctx, state, done)
			return fmt.Errorf("step.Run[%d][%s]: %w", idx, step.Name(), err)
		}

		if compensate != nil {
			done = append(done, completed[S]{name: step.Name(), compensate: compensate})
		}
	}

	return nil
}

// unwind runs compensations newest first. A failing compensation is logged
// and the unwind keeps going: the forward error stays the only error the
// caller sees.
func (c Coordinator[S]) unwind(ctx context.Context, state *S, done []completed[S]) {
	// compensations still run when the forward failure was a cancellation
	ctx = context.WithoutCancel(ctx)

	for i := len(done) - 1; i >= 0; i-- {
		if err := done[i].compensate(ctx, state); err != nil {
			c.logger.Error().
				Err(err).
				Str("step", done[i].name).
				Msg("compensation failed")
		}
	}
}
