// Package pipeline provides the sequential step execution pipeline.
package pipeline

import (
	"context"
	"fmt"
)

// Step is a single named unit of work in the pipeline.
type Step interface {
	Name() string
	Execute(ctx context.Context, rc *RunContext) error
}

// Pipeline executes a sequence of steps in order.
type Pipeline struct {
	steps []Step
}

// New creates a Pipeline from the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run executes each step sequentially. It stops on the first error.
func (p *Pipeline) Run(ctx context.Context, rc *RunContext) error {
	for _, s := range p.steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pipeline cancelled before step %s: %w", s.Name(), err)
		}
		if err := s.Execute(ctx, rc); err != nil {
			return fmt.Errorf("step %s: %w", s.Name(), err)
		}
	}
	return nil
}
