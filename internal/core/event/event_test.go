// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package event

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

const issueOpened = `{
  "action": "opened",
  "issue": {"number": 42, "title": "Crash", "body": "Some text", "user": {"login": "octocat"}},
  "sender": {"login": "octocat", "id": 583231},
  "repository": {"name": "payload-repo", "owner": {"login": "payload-owner"}}
}`

func TestParseIssueOpened(t *testing.T) {
	ev, err := Parse([]byte(issueOpened), "similigh/issue-gate")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if ev.Action != ActionOpened {
		t.Errorf("Expected action opened, got %q", ev.Action)
	}
	if ev.Issue == nil || ev.Issue.GetBody() != "Some text" {
		t.Fatalf("Expected issue body to be decoded, got %+v", ev.Issue)
	}
	if ev.PullRequest != nil {
		t.Error("Expected no pull request")
	}
	if ev.Sender.GetLogin() != "octocat" {
		t.Errorf("Expected sender octocat, got %q", ev.Sender.GetLogin())
	}
	if ev.Owner != "similigh" || ev.Repo != "issue-gate" {
		t.Errorf("Expected repository from argument, got %s/%s", ev.Owner, ev.Repo)
	}
	if ev.Number != 42 {
		t.Errorf("Expected number 42, got %d", ev.Number)
	}
	if ev.Issue == nil || ev.PullRequest != nil {
		t.Error("Expected only the issue to be decoded")
	}

	sender, ok := ev.Payload["sender"].(map[string]any)
	if !ok {
		t.Fatalf("Expected raw sender map, got %T", ev.Payload["sender"])
	}
	if id, ok := sender["id"].(json.Number); !ok || id.String() != "583231" {
		t.Errorf("Expected sender id preserved as json.Number, got %#v", sender["id"])
	}
}

func TestParseRepositoryFallback(t *testing.T) {
	ev, err := Parse([]byte(issueOpened), "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ev.Owner != "payload-owner" || ev.Repo != "payload-repo" {
		t.Errorf("Expected repository from payload, got %s/%s", ev.Owner, ev.Repo)
	}
}

func TestParsePullRequestNumber(t *testing.T) {
	data := `{"action":"opened","number":7,"pull_request":{"number":7,"body":"## Summary"},"sender":{"login":"a"}}`
	ev, err := Parse([]byte(data), "o/r")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ev.Issue != nil {
		t.Error("Expected no issue")
	}
	if ev.PullRequest.GetBody() != "## Summary" {
		t.Errorf("Unexpected PR body %q", ev.PullRequest.GetBody())
	}
	if ev.Number != 7 {
		t.Errorf("Expected number 7, got %d", ev.Number)
	}
}

func TestParseNotApplicable(t *testing.T) {
	ev, err := Parse([]byte(`{"action":"opened","number":3,"sender":null}`), "o/r")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ev.Issue != nil || ev.PullRequest != nil {
		t.Error("Expected event without issue or pull_request to decode neither")
	}
	if ev.Sender != nil {
		t.Error("Expected null sender to decode as absent")
	}
	if ev.Number != 3 {
		t.Errorf("Expected top-level number fallback, got %d", ev.Number)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"action":`), "o/r"); err == nil {
		t.Error("Expected error for truncated payload")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte(issueOpened), 0o644); err != nil {
		t.Fatal(err)
	}
	ev, err := Load(path, "o/r")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ev.Number != 42 {
		t.Errorf("Expected number 42, got %d", ev.Number)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json"), "o/r"); err == nil {
		t.Error("Expected error for missing payload file")
	}
}
