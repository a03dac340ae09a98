// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package config handles loading, merging and validating issue-gate configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/similigh/issue-gate/internal/core/failure"
)

// DefaultMatchTimeout bounds a single pattern evaluation.
const DefaultMatchTimeout = 10 * time.Second

var (
	// ErrNoMessage is returned when neither close message is configured.
	ErrNoMessage = failure.New(failure.ErrConfiguration,
		"Action must have at least one of issue-close-message or pr-close-message set")

	// ErrNoPattern is returned when neither pattern is configured.
	ErrNoPattern = failure.New(failure.ErrConfiguration,
		"Action must have at least one of issue-pattern or pr-pattern set")

	// ErrNoToken is returned when the repo token is missing.
	ErrNoToken = failure.New(failure.ErrConfiguration,
		"Input required and not supplied: repo-token")
)

// Config is the root configuration structure.
type Config struct {
	// Extends allows inheriting from a remote config (e.g., "org/repo@branch").
	Extends string `yaml:"extends,omitempty"`

	// Issue is the rule applied to newly opened issues.
	Issue RuleConfig `yaml:"issue"`

	// PullRequest is the rule applied to newly opened pull requests.
	PullRequest RuleConfig `yaml:"pull_request"`

	// MatchTimeout bounds a single pattern evaluation.
	MatchTimeout time.Duration `yaml:"match_timeout,omitempty"`

	// DryRun renders messages without calling the GitHub API.
	DryRun bool `yaml:"dry_run,omitempty"`

	// RepoToken is the API credential. It is never read from files.
	RepoToken string `yaml:"-"`
}

// RuleConfig pairs the required body pattern with the message posted on close.
type RuleConfig struct {
	Pattern      string `yaml:"pattern,omitempty"`
	CloseMessage string `yaml:"close_message,omitempty"`
}

// Default returns a config with defaults applied and no rules.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Validate checks that the config can ever produce a close action.
// Messages are checked before patterns, and both before the credential.
func (c *Config) Validate() error {
	if c.Issue.CloseMessage == "" && c.PullRequest.CloseMessage == "" {
		return ErrNoMessage
	}
	if c.Issue.Pattern == "" && c.PullRequest.Pattern == "" {
		return ErrNoPattern
	}
	if c.RepoToken == "" {
		return ErrNoToken
	}
	return nil
}

// Load reads a config file from the given path and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parseRaw(data)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

// LoadWithInheritance loads a config and resolves the 'extends' chain.
// The fetcher function is used to retrieve remote configs.
func LoadWithInheritance(path string, fetcher func(ref string) ([]byte, error)) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if cfg.Extends == "" {
		return cfg, nil
	}

	parentData, err := fetcher(cfg.Extends)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parent config '%s': %w", cfg.Extends, err)
	}

	parentCfg, err := parseRaw(parentData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse parent config: %w", err)
	}

	return Merge(parentCfg, cfg), nil
}

// FindConfigPath searches for a config file in standard locations.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	candidates := []string{
		".github/issue-gate.yaml",
		".github/issue-gate.yml",
		".issue-gate.yaml",
		".issue-gate.yml",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	return ""
}

// ParseExtendsRef parses "org/repo@branch" or "org/repo@branch:path" into components.
func ParseExtendsRef(ref string) (org, repo, branch, path string, err error) {
	parts := strings.SplitN(ref, "@", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo@branch)", ref)
	}

	orgRepo := strings.SplitN(parts[0], "/", 2)
	if len(orgRepo) != 2 || orgRepo[0] == "" || orgRepo[1] == "" {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo)", ref)
	}

	org = orgRepo[0]
	repo = orgRepo[1]

	branchPath := strings.SplitN(parts[1], ":", 2)
	branch = branchPath[0]
	if len(branchPath) == 2 && branchPath[1] != "" {
		path = branchPath[1]
	} else {
		path = ".github/issue-gate.yaml"
	}

	return org, repo, branch, path, nil
}

// Merge merges a child config onto a parent config.
// Non-zero values in child override parent. The result has defaults applied.
func Merge(parent, child *Config) *Config {
	result := *parent
	result.Extends = ""

	if child.Issue.Pattern != "" {
		result.Issue.Pattern = child.Issue.Pattern
	}
	if child.Issue.CloseMessage != "" {
		result.Issue.CloseMessage = child.Issue.CloseMessage
	}
	if child.PullRequest.Pattern != "" {
		result.PullRequest.Pattern = child.PullRequest.Pattern
	}
	if child.PullRequest.CloseMessage != "" {
		result.PullRequest.CloseMessage = child.PullRequest.CloseMessage
	}
	if child.MatchTimeout != 0 {
		result.MatchTimeout = child.MatchTimeout
	}
	if child.DryRun {
		result.DryRun = true
	}
	if child.RepoToken != "" {
		result.RepoToken = child.RepoToken
	}

	result.applyDefaults()
	return &result
}

func parseRaw(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults() {
	if c.MatchTimeout <= 0 {
		c.MatchTimeout = DefaultMatchTimeout
	}
}
