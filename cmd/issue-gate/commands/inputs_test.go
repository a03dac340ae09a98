package commands

import (
	"testing"

	"github.com/spf13/cobra"
)

func newTestRunCommand(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "run"}
	addRunFlags(cmd.Flags())
	return cmd
}

func TestReadInputsFromEnvironment(t *testing.T) {
	t.Setenv("INPUT_ISSUE-PATTERN", "  ^Description:  ")
	t.Setenv("INPUT_PR-PATTERN", "## Summary")
	t.Setenv("INPUT_ISSUE-CLOSE-MESSAGE", "Closing ${issue.number}\n")
	t.Setenv("INPUT_PR-CLOSE-MESSAGE", "")
	t.Setenv("INPUT_REPO-TOKEN", "ghs_token")
	t.Setenv("INPUT_DRY-RUN", "true")
	t.Setenv("GITHUB_EVENT_PATH", "/tmp/event.json")
	t.Setenv("GITHUB_REPOSITORY", "octo/repo")
	t.Setenv("GITHUB_API_URL", "https://api.github.com")

	cmd := newTestRunCommand(t)
	v, err := bindInputs(cmd.Flags())
	if err != nil {
		t.Fatalf("bindInputs failed: %v", err)
	}
	in := readInputs(v)

	want := actionInputs{
		IssuePattern:      "^Description:",
		PRPattern:         "## Summary",
		IssueCloseMessage: "Closing ${issue.number}",
		RepoToken:         "ghs_token",
		DryRun:            true,
		EventPath:         "/tmp/event.json",
		Repository:        "octo/repo",
		APIURL:            "https://api.github.com",
	}
	if in != want {
		t.Errorf("unexpected inputs:\n got  %+v\n want %+v", in, want)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("INPUT_ISSUE-PATTERN", "from-env")
	t.Setenv("GITHUB_EVENT_PATH", "/env/event.json")

	cmd := newTestRunCommand(t)
	if err := cmd.Flags().Set(inputIssuePattern, "from-flag"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set(keyEventPath, "/flag/event.json"); err != nil {
		t.Fatal(err)
	}

	v, err := bindInputs(cmd.Flags())
	if err != nil {
		t.Fatalf("bindInputs failed: %v", err)
	}
	in := readInputs(v)

	if in.IssuePattern != "from-flag" {
		t.Errorf("expected flag to win, got %q", in.IssuePattern)
	}
	if in.EventPath != "/flag/event.json" {
		t.Errorf("expected flag event path, got %q", in.EventPath)
	}
}

func TestOverlay(t *testing.T) {
	in := actionInputs{
		IssuePattern:   "^a",
		PRCloseMessage: "bye",
		RepoToken:      "tok",
		DryRun:         true,
	}

	cfg := in.overlay()

	if cfg.Issue.Pattern != "^a" || cfg.Issue.CloseMessage != "" {
		t.Errorf("unexpected issue rule: %+v", cfg.Issue)
	}
	if cfg.PullRequest.Pattern != "" || cfg.PullRequest.CloseMessage != "bye" {
		t.Errorf("unexpected pull request rule: %+v", cfg.PullRequest)
	}
	if cfg.RepoToken != "tok" || !cfg.DryRun {
		t.Errorf("unexpected token or dry run: %+v", cfg)
	}
}
