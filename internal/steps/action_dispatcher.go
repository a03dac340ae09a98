// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package steps

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/similigh/issue-gate/internal/contribution"
	"github.com/similigh/issue-gate/internal/core/failure"
	"github.com/similigh/issue-gate/internal/core/pipeline"
	"github.com/similigh/issue-gate/internal/utils/text"
)

// ActionDispatcher renders the close message and closes the contribution.
type ActionDispatcher struct {
	github contribution.API
	dryRun bool
	log    *zap.Logger
}

// NewActionDispatcher creates a new action dispatcher step.
func NewActionDispatcher(deps *pipeline.Dependencies) *ActionDispatcher {
	return &ActionDispatcher{
		github: deps.GitHub,
		dryRun: deps.DryRun,
		log:    deps.Log("action_dispatcher"),
	}
}

// Name returns the step name.
func (s *ActionDispatcher) Name() string {
	return "action_dispatcher"
}

// Run comments on the contribution and then closes it. The close is only
// attempted once the comment succeeded; a posted comment is never rolled back.
func (s *ActionDispatcher) Run(ctx *pipeline.Context) error {
	closeMessage := ctx.Kind.CloseMessage(ctx.Config)
	if closeMessage == "" {
		s.log.Debug("No close message template provided for this type of contribution")
		return ctx.Skip(pipeline.OutcomeIgnored, "No close message template provided for this type of contribution")
	}

	s.log.Debug("Creating message from template")
	message, err := text.Render(closeMessage, ctx.Event.Payload)
	if err != nil {
		return err
	}
	// GitHub rejects blank comments and reviews.
	if strings.TrimSpace(message) == "" {
		return failure.New(failure.ErrTemplateRender,
			fmt.Sprintf("Close message for %s #%d rendered to an empty string", ctx.Kind.Name(), ctx.Event.Number))
	}
	ctx.Result.Message = message

	ev := ctx.Event
	s.log.Info("Adding message",
		zap.String("message", message),
		zap.String("kind", ctx.Kind.Name()),
		zap.Int("number", ev.Number),
	)

	if s.dryRun || ctx.Config.DryRun {
		s.log.Info("DRY RUN: would comment and close",
			zap.String("kind", ctx.Kind.Name()),
			zap.Int("number", ev.Number),
		)
		ctx.Result.Outcome = pipeline.OutcomeDryRun
		return nil
	}

	if s.github == nil {
		return failure.New(failure.ErrConfiguration, "GitHub client is required to close contributions")
	}

	if err := ctx.Kind.Comment(ctx.Ctx, s.github, ev, message); err != nil {
		return failure.Wrap(failure.ErrRemoteAction, err,
			fmt.Sprintf("failed to comment on %s #%d", ctx.Kind.Name(), ev.Number))
	}
	ctx.Result.CommentPosted = true

	if err := ctx.Kind.Close(ctx.Ctx, s.github, ev); err != nil {
		return failure.Wrap(failure.ErrRemoteAction, err,
			fmt.Sprintf("failed to close %s #%d", ctx.Kind.Name(), ev.Number))
	}
	ctx.Result.Closed = true
	ctx.Result.Outcome = pipeline.OutcomeClosed

	s.log.Info("Closed contribution",
		zap.String("kind", ctx.Kind.Name()),
		zap.Int("number", ev.Number),
	)
	return nil
}
