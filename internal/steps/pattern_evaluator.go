// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package steps

import (
	"go.uber.org/zap"

	"github.com/similigh/issue-gate/internal/core/pipeline"
	"github.com/similigh/issue-gate/internal/matcher"
)

// PatternEvaluator tests the contribution body against the kind's pattern.
type PatternEvaluator struct {
	log *zap.Logger
}

// NewPatternEvaluator creates a new pattern evaluator step.
func NewPatternEvaluator(deps *pipeline.Dependencies) *PatternEvaluator {
	return &PatternEvaluator{log: deps.Log("pattern_evaluator")}
}

// Name returns the step name.
func (s *PatternEvaluator) Name() string {
	return "pattern_evaluator"
}

// Run compiles the pattern and matches the body. The pattern is compiled
// before the body is inspected so a malformed pattern always fails the run.
func (s *PatternEvaluator) Run(ctx *pipeline.Context) error {
	m, err := matcher.Compile(ctx.Pattern, ctx.Config.MatchTimeout)
	if err != nil {
		return err
	}

	if ctx.Body == "" {
		s.log.Debug("No body to match against")
		return ctx.Skip(pipeline.OutcomeIgnored, "No body to match against")
	}

	s.log.Debug("Matching against pattern", zap.Stringer("pattern", m))
	matched, err := m.Match(ctx.Body)
	if err != nil {
		return err
	}

	if matched {
		s.log.Debug("Body matched")
		return ctx.Skip(pipeline.OutcomeMatched, "Body matched")
	}

	s.log.Debug("Body did not match")
	ctx.Result.Outcome = pipeline.OutcomeUnmatched
	return nil
}
