// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package pipeline provides the core pipeline engine for issue-gate.
// It defines the Step interface and Context structure used by all pipeline steps.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/similigh/issue-gate/internal/contribution"
	"github.com/similigh/issue-gate/internal/core/config"
	"github.com/similigh/issue-gate/internal/core/event"
)

// ErrSkipPipeline indicates that the pipeline should stop gracefully.
// This is not an error condition, just an early exit (e.g., body matched, no rule for this kind).
var ErrSkipPipeline = errors.New("skip remaining pipeline steps")

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Name returns the unique identifier for this step.
	Name() string

	// Run executes the step's logic.
	// It should return ErrSkipPipeline to stop the pipeline gracefully,
	// or any other error to indicate failure.
	Run(ctx *Context) error
}

// Outcome is the terminal state of a run.
type Outcome string

const (
	OutcomePending   Outcome = "pending"
	OutcomeIgnored   Outcome = "ignored"
	OutcomeMatched   Outcome = "matched"
	OutcomeUnmatched Outcome = "unmatched"
	OutcomeDryRun    Outcome = "dry_run"
	OutcomeClosed    Outcome = "closed"
	OutcomeFailed    Outcome = "failed"
)

// Result holds the accumulated results from pipeline execution.
type Result struct {
	Outcome       Outcome `json:"outcome"`
	Kind          string  `json:"kind,omitempty"`
	Number        int     `json:"number,omitempty"`
	SkipReason    string  `json:"skip_reason,omitempty"`
	Message       string  `json:"message,omitempty"`
	CommentPosted bool    `json:"comment_posted"`
	Closed        bool    `json:"closed"`
	Error         string  `json:"error,omitempty"`
}

// Context carries data through the pipeline steps.
type Context struct {
	// Ctx is the Go context for cancellation and timeouts.
	Ctx context.Context

	// Event is the webhook delivery being evaluated.
	Event *event.Event

	// Config is the resolved configuration.
	Config *config.Config

	// Kind is set by the classifier.
	Kind contribution.Kind

	// Pattern is the kind's configured pattern.
	Pattern string

	// Body is the contribution body under evaluation.
	Body string

	// Result accumulates the processing results.
	Result *Result
}

// NewContext creates a new pipeline context for an event.
func NewContext(ctx context.Context, ev *event.Event, cfg *config.Config) *Context {
	return &Context{
		Ctx:    ctx,
		Event:  ev,
		Config: cfg,
		Result: &Result{Outcome: OutcomePending, Number: ev.Number},
	}
}

// Skip records a graceful early exit and returns ErrSkipPipeline.
func (c *Context) Skip(outcome Outcome, reason string) error {
	c.Result.Outcome = outcome
	c.Result.SkipReason = reason
	return ErrSkipPipeline
}

// Pipeline executes a sequence of steps.
type Pipeline struct {
	steps []Step
}

// New creates a new pipeline with the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run executes all steps in order.
// Stops on the first error (unless it's ErrSkipPipeline, which is graceful).
func (p *Pipeline) Run(ctx *Context) error {
	for _, step := range p.steps {
		if err := step.Run(ctx); err != nil {
			if errors.Is(err, ErrSkipPipeline) {
				return nil
			}
			ctx.Result.Outcome = OutcomeFailed
			ctx.Result.Error = err.Error()
			return fmt.Errorf("step '%s' failed: %w", step.Name(), err)
		}
	}
	return nil
}

// Steps returns the list of steps (for introspection).
func (p *Pipeline) Steps() []Step {
	return p.steps
}
