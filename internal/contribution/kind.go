// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package contribution models the two kinds of contribution the gate evaluates.
// Each kind owns its body extraction, its rule selection and its close calls.
package contribution

import (
	"context"

	"github.com/similigh/issue-gate/internal/core/config"
	"github.com/similigh/issue-gate/internal/core/event"
)

// ReviewEventComment is the review type used to explain a pull request close.
const ReviewEventComment = "COMMENT"

// API is the subset of the GitHub API the gate calls.
type API interface {
	CreateComment(ctx context.Context, org, repo string, number int, body string) error
	CloseIssue(ctx context.Context, org, repo string, number int) error
	CreateReview(ctx context.Context, org, repo string, number int, body, reviewEvent string) error
	ClosePullRequest(ctx context.Context, org, repo string, number int) error
}

// Kind is a contribution kind.
type Kind interface {
	// Name is the human-readable kind name, e.g. "pull request".
	Name() string

	// Present reports whether the event carries this kind's sub-record.
	Present(ev *event.Event) bool

	// Body returns this kind's body text, or "" when absent.
	Body(ev *event.Event) string

	// Pattern selects the configured pattern for this kind.
	Pattern(cfg *config.Config) string

	// CloseMessage selects the configured close-message template for this kind.
	CloseMessage(cfg *config.Config) string

	// Comment posts the explanation for the close.
	Comment(ctx context.Context, api API, ev *event.Event, message string) error

	// Close transitions the contribution to the closed state.
	Close(ctx context.Context, api API, ev *event.Event) error
}

var (
	Issue       Kind = issueKind{}
	PullRequest Kind = pullRequestKind{}
)

// Kinds lists every kind in classification order.
var Kinds = []Kind{Issue, PullRequest}

// Classify returns the kind of contribution carried by the event.
func Classify(ev *event.Event) (Kind, bool) {
	for _, k := range Kinds {
		if k.Present(ev) {
			return k, true
		}
	}
	return nil, false
}

// Body returns the first non-empty body across kinds, issue first.
func Body(ev *event.Event) string {
	for _, k := range Kinds {
		if b := k.Body(ev); b != "" {
			return b
		}
	}
	return ""
}

type issueKind struct{}

func (issueKind) Name() string { return "issue" }

func (issueKind) Present(ev *event.Event) bool { return ev.Issue != nil }

func (issueKind) Body(ev *event.Event) string { return ev.Issue.GetBody() }

func (issueKind) Pattern(cfg *config.Config) string { return cfg.Issue.Pattern }

func (issueKind) CloseMessage(cfg *config.Config) string { return cfg.Issue.CloseMessage }

func (issueKind) Comment(ctx context.Context, api API, ev *event.Event, message string) error {
	return api.CreateComment(ctx, ev.Owner, ev.Repo, ev.Number, message)
}

func (issueKind) Close(ctx context.Context, api API, ev *event.Event) error {
	return api.CloseIssue(ctx, ev.Owner, ev.Repo, ev.Number)
}

type pullRequestKind struct{}

func (pullRequestKind) Name() string { return "pull request" }

func (pullRequestKind) Present(ev *event.Event) bool { return ev.PullRequest != nil }

func (pullRequestKind) Body(ev *event.Event) string { return ev.PullRequest.GetBody() }

func (pullRequestKind) Pattern(cfg *config.Config) string { return cfg.PullRequest.Pattern }

func (pullRequestKind) CloseMessage(cfg *config.Config) string { return cfg.PullRequest.CloseMessage }

func (pullRequestKind) Comment(ctx context.Context, api API, ev *event.Event, message string) error {
	return api.CreateReview(ctx, ev.Owner, ev.Repo, ev.Number, message, ReviewEventComment)
}

func (pullRequestKind) Close(ctx context.Context, api API, ev *event.Event) error {
	return api.ClosePullRequest(ctx, ev.Owner, ev.Repo, ev.Number)
}
