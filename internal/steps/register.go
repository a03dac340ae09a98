// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package steps

import (
	"github.com/similigh/issue-gate/internal/core/pipeline"
)

// RegisterAll registers all built-in steps with the registry.
func RegisterAll(r *pipeline.Registry) {
	r.Register("config_resolver", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewConfigResolver(deps), nil
	})

	r.Register("event_classifier", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewEventClassifier(deps), nil
	})

	r.Register("pattern_evaluator", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewPatternEvaluator(deps), nil
	})

	r.Register("action_dispatcher", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewActionDispatcher(deps), nil
	})
}
