// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/similigh/issue-gate/internal/core/config"
)

// Input names as declared by the action. In a workflow each one arrives as
// INPUT_<NAME> with the name upper-cased and the hyphens kept.
const (
	inputIssuePattern      = "issue-pattern"
	inputPRPattern         = "pr-pattern"
	inputIssueCloseMessage = "issue-close-message"
	inputPRCloseMessage    = "pr-close-message"
	inputRepoToken         = "repo-token"
	inputDryRun            = "dry-run"
)

// Runner context, read from the variables GitHub Actions sets.
const (
	keyEventPath = "event-path"
	keyRepo      = "repo"
	keyAPIURL    = "api-url"
)

// actionInputs is the resolved set of inputs for one run.
type actionInputs struct {
	IssuePattern      string
	PRPattern         string
	IssueCloseMessage string
	PRCloseMessage    string
	RepoToken         string
	DryRun            bool

	EventPath  string
	Repository string
	APIURL     string
}

// bindInputs binds flags and the action environment into a fresh viper
// instance. Explicit flags win over the environment.
func bindInputs(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("INPUT")
	v.AutomaticEnv()

	for _, name := range []string{
		inputIssuePattern, inputPRPattern,
		inputIssueCloseMessage, inputPRCloseMessage,
		inputRepoToken, inputDryRun,
		keyEventPath, keyRepo,
	} {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	envs := map[string]string{
		keyEventPath: "GITHUB_EVENT_PATH",
		keyRepo:      "GITHUB_REPOSITORY",
		keyAPIURL:    "GITHUB_API_URL",
	}
	for key, env := range envs {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return v, nil
}

// readInputs reads every input, trimming surrounding whitespace.
func readInputs(v *viper.Viper) actionInputs {
	get := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	return actionInputs{
		IssuePattern:      get(inputIssuePattern),
		PRPattern:         get(inputPRPattern),
		IssueCloseMessage: get(inputIssueCloseMessage),
		PRCloseMessage:    get(inputPRCloseMessage),
		RepoToken:         get(inputRepoToken),
		DryRun:            v.GetBool(inputDryRun),
		EventPath:         get(keyEventPath),
		Repository:        get(keyRepo),
		APIURL:            get(keyAPIURL),
	}
}

// overlay returns the inputs as a config layer for config.Merge.
func (in actionInputs) overlay() *config.Config {
	return &config.Config{
		Issue: config.RuleConfig{
			Pattern:      in.IssuePattern,
			CloseMessage: in.IssueCloseMessage,
		},
		PullRequest: config.RuleConfig{
			Pattern:      in.PRPattern,
			CloseMessage: in.PRCloseMessage,
		},
		DryRun:    in.DryRun,
		RepoToken: in.RepoToken,
	}
}
