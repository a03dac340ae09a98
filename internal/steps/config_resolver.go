// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package steps

import (
	"go.uber.org/zap"

	"github.com/similigh/issue-gate/internal/core/pipeline"
)

// ConfigResolver fails the run when no close action could ever be produced.
type ConfigResolver struct {
	log *zap.Logger
}

// NewConfigResolver creates a new config resolver step.
func NewConfigResolver(deps *pipeline.Dependencies) *ConfigResolver {
	return &ConfigResolver{log: deps.Log("config_resolver")}
}

// Name returns the step name.
func (s *ConfigResolver) Name() string {
	return "config_resolver"
}

// Run validates the configuration.
func (s *ConfigResolver) Run(ctx *pipeline.Context) error {
	if err := ctx.Config.Validate(); err != nil {
		return err
	}

	s.log.Debug("Configuration validated",
		zap.Bool("issue_pattern", ctx.Config.Issue.Pattern != ""),
		zap.Bool("issue_close_message", ctx.Config.Issue.CloseMessage != ""),
		zap.Bool("pr_pattern", ctx.Config.PullRequest.Pattern != ""),
		zap.Bool("pr_close_message", ctx.Config.PullRequest.CloseMessage != ""),
	)
	return nil
}
