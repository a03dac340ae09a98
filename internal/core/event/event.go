// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package event decodes the webhook payload that triggered a workflow run.
package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v60/github"
)

// ActionOpened is the only event action that is evaluated.
const ActionOpened = "opened"

// Event is an immutable view of one webhook delivery.
type Event struct {
	Action      string
	Issue       *github.Issue
	PullRequest *github.PullRequest
	Sender      *github.User

	Owner  string
	Repo   string
	Number int

	// Payload is the raw decoded payload, keyed by top-level field name.
	Payload map[string]any
}

type payload struct {
	Action      string              `json:"action"`
	Number      int                 `json:"number"`
	Issue       *github.Issue       `json:"issue"`
	PullRequest *github.PullRequest `json:"pull_request"`
	Sender      *github.User        `json:"sender"`
	Repository  *github.Repository  `json:"repository"`
}

// Load reads an event payload from path. repository is the "owner/name" of
// the repository the workflow runs in and may be empty.
func Load(path, repository string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload: %w", err)
	}
	return Parse(data, repository)
}

// Parse decodes an event payload. The repository identity comes from
// repository when set, otherwise from the payload's repository record.
func Parse(data []byte, repository string) (*Event, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse event payload: %w", err)
	}

	raw := make(map[string]any)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse event payload: %w", err)
	}

	ev := &Event{
		Action:      p.Action,
		Issue:       p.Issue,
		PullRequest: p.PullRequest,
		Sender:      p.Sender,
		Payload:     raw,
	}

	ev.Owner, ev.Repo = splitRepository(repository)
	if ev.Owner == "" || ev.Repo == "" {
		ev.Owner = p.Repository.GetOwner().GetLogin()
		ev.Repo = p.Repository.GetName()
	}

	switch {
	case p.Issue != nil:
		ev.Number = p.Issue.GetNumber()
	case p.PullRequest != nil:
		ev.Number = p.PullRequest.GetNumber()
	default:
		ev.Number = p.Number
	}

	return ev, nil
}

func splitRepository(repository string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(repository), "/", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
