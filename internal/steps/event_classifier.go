// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package steps contains the pipeline steps of the auto-close rule.
// Each step implements the pipeline.Step interface.
package steps

import (
	"go.uber.org/zap"

	"github.com/similigh/issue-gate/internal/contribution"
	"github.com/similigh/issue-gate/internal/core/event"
	"github.com/similigh/issue-gate/internal/core/failure"
	"github.com/similigh/issue-gate/internal/core/pipeline"
)

// EventClassifier decides whether the delivery is an opened issue or pull request
// and selects the rule that applies to it.
type EventClassifier struct {
	log *zap.Logger
}

// NewEventClassifier creates a new event classifier step.
func NewEventClassifier(deps *pipeline.Dependencies) *EventClassifier {
	return &EventClassifier{log: deps.Log("event_classifier")}
}

// Name returns the step name.
func (s *EventClassifier) Name() string {
	return "event_classifier"
}

// Run classifies the event.
func (s *EventClassifier) Run(ctx *pipeline.Context) error {
	ev := ctx.Event

	s.log.Debug("Classifying event",
		zap.String("action", ev.Action),
		zap.String("repository", ev.Owner+"/"+ev.Repo),
		zap.Int("number", ev.Number),
	)

	if ev.Action != event.ActionOpened {
		return s.skip(ctx, "No issue or PR was opened, skipping")
	}

	kind, ok := contribution.Classify(ev)
	if !ok {
		return s.skip(ctx, "The event that triggered this action was not a pull request or issue, skipping.")
	}

	// GitHub always sends a sender; a missing one means the payload is not what we think it is.
	if ev.Sender == nil {
		return failure.New(failure.ErrInternalInvariant, "Internal error, no sender provided by GitHub")
	}

	ctx.Kind = kind
	ctx.Result.Kind = kind.Name()
	ctx.Pattern = kind.Pattern(ctx.Config)
	ctx.Body = contribution.Body(ev)

	if ctx.Pattern == "" {
		return s.skip(ctx, "No pattern provided for this type of contribution")
	}

	s.log.Debug("Event classified",
		zap.String("kind", kind.Name()),
		zap.String("sender", ev.Sender.GetLogin()),
	)
	return nil
}

func (s *EventClassifier) skip(ctx *pipeline.Context, reason string) error {
	s.log.Debug(reason)
	return ctx.Skip(pipeline.OutcomeIgnored, reason)
}
