// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package contribution

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/google/go-github/v60/github"

	"github.com/similigh/issue-gate/internal/core/config"
	"github.com/similigh/issue-gate/internal/core/event"
)

type recordingAPI struct {
	calls []string
}

func (r *recordingAPI) CreateComment(_ context.Context, org, repo string, number int, body string) error {
	r.calls = append(r.calls, fmt.Sprintf("comment %s/%s#%d %q", org, repo, number, body))
	return nil
}

func (r *recordingAPI) CloseIssue(_ context.Context, org, repo string, number int) error {
	r.calls = append(r.calls, fmt.Sprintf("close-issue %s/%s#%d", org, repo, number))
	return nil
}

func (r *recordingAPI) CreateReview(_ context.Context, org, repo string, number int, body, reviewEvent string) error {
	r.calls = append(r.calls, fmt.Sprintf("review %s/%s#%d %q %s", org, repo, number, body, reviewEvent))
	return nil
}

func (r *recordingAPI) ClosePullRequest(_ context.Context, org, repo string, number int) error {
	r.calls = append(r.calls, fmt.Sprintf("close-pr %s/%s#%d", org, repo, number))
	return nil
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ev   *event.Event
		want Kind
		ok   bool
	}{
		{"issue", &event.Event{Issue: &github.Issue{}}, Issue, true},
		{"pull request", &event.Event{PullRequest: &github.PullRequest{}}, PullRequest, true},
		{"both prefers issue", &event.Event{Issue: &github.Issue{}, PullRequest: &github.PullRequest{}}, Issue, true},
		{"neither", &event.Event{}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Classify() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestBody(t *testing.T) {
	tests := []struct {
		name string
		ev   *event.Event
		want string
	}{
		{"issue body", &event.Event{Issue: &github.Issue{Body: github.String("issue")}}, "issue"},
		{"pull request body", &event.Event{PullRequest: &github.PullRequest{Body: github.String("pr")}}, "pr"},
		{
			"issue wins when both set",
			&event.Event{Issue: &github.Issue{Body: github.String("issue")}, PullRequest: &github.PullRequest{Body: github.String("pr")}},
			"issue",
		},
		{"nil body", &event.Event{Issue: &github.Issue{}}, ""},
		{"no record", &event.Event{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Body(tt.ev); got != tt.want {
				t.Errorf("Body() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRuleSelection(t *testing.T) {
	cfg := &config.Config{
		Issue:       config.RuleConfig{Pattern: "ip", CloseMessage: "im"},
		PullRequest: config.RuleConfig{Pattern: "pp", CloseMessage: "pm"},
	}

	if Issue.Pattern(cfg) != "ip" || Issue.CloseMessage(cfg) != "im" {
		t.Error("Issue kind selected the wrong rule")
	}
	if PullRequest.Pattern(cfg) != "pp" || PullRequest.CloseMessage(cfg) != "pm" {
		t.Error("PullRequest kind selected the wrong rule")
	}
	if Issue.Name() != "issue" || PullRequest.Name() != "pull request" {
		t.Error("Unexpected kind names")
	}
}

func TestIssueCalls(t *testing.T) {
	api := &recordingAPI{}
	ev := &event.Event{Owner: "o", Repo: "r", Number: 5, Issue: &github.Issue{}}

	if err := Issue.Comment(context.Background(), api, ev, "bye"); err != nil {
		t.Fatal(err)
	}
	if err := Issue.Close(context.Background(), api, ev); err != nil {
		t.Fatal(err)
	}

	want := []string{`comment o/r#5 "bye"`, "close-issue o/r#5"}
	if !reflect.DeepEqual(api.calls, want) {
		t.Errorf("calls = %v, want %v", api.calls, want)
	}
}

func TestPullRequestCalls(t *testing.T) {
	api := &recordingAPI{}
	ev := &event.Event{Owner: "o", Repo: "r", Number: 9, PullRequest: &github.PullRequest{}}

	if err := PullRequest.Comment(context.Background(), api, ev, "bye"); err != nil {
		t.Fatal(err)
	}
	if err := PullRequest.Close(context.Background(), api, ev); err != nil {
		t.Fatal(err)
	}

	want := []string{`review o/r#9 "bye" COMMENT`, "close-pr o/r#9"}
	if !reflect.DeepEqual(api.calls, want) {
		t.Errorf("calls = %v, want %v", api.calls, want)
	}
}
