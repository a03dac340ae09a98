// Package pipeline provides step registration and preset workflow building.
package pipeline

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/similigh/issue-gate/internal/contribution"
)

// DefaultWorkflow is the preset used when none is requested.
const DefaultWorkflow = "auto-close"

// Registry holds registered step factories.
// Step factories create Step instances, allowing for dependency injection.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]StepFactory
}

// StepFactory is a function that creates a Step.
// It receives dependencies (like clients, config) as parameters.
type StepFactory func(deps *Dependencies) (Step, error)

// Dependencies holds the dependencies that can be injected into steps.
type Dependencies struct {
	// GitHub performs the comment and close calls. May be nil in dry-run mode.
	GitHub contribution.API

	// Logger receives step diagnostics. Nil means discard.
	Logger *zap.Logger

	// DryRun renders messages without calling GitHub.
	DryRun bool
}

// Log returns the named step logger.
func (d *Dependencies) Log(step string) *zap.Logger {
	if d == nil || d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger.With(zap.String("step", step))
}

// NewRegistry creates a new step registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]StepFactory),
	}
}

// Register adds a step factory to the registry.
func (r *Registry) Register(name string, factory StepFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get retrieves a step factory by name.
func (r *Registry) Get(name string) (StepFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[name]
	return factory, ok
}

// BuildFromNames creates a pipeline from a list of step names.
func (r *Registry) BuildFromNames(names []string, deps *Dependencies) (*Pipeline, error) {
	var steps []Step
	for _, name := range names {
		factory, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown step: %s", name)
		}
		step, err := factory(deps)
		if err != nil {
			return nil, fmt.Errorf("failed to create step '%s': %w", name, err)
		}
		steps = append(steps, step)
	}
	return New(steps...), nil
}

// Presets defines the built-in workflow presets.
var Presets = map[string][]string{
	// auto-close: validate, classify, evaluate, then comment and close
	"auto-close": {
		"config_resolver",
		"event_classifier",
		"pattern_evaluator",
		"action_dispatcher",
	},

	// evaluate-only: report whether the body matches without acting
	"evaluate-only": {
		"config_resolver",
		"event_classifier",
		"pattern_evaluator",
	},
}

// GetPreset returns the step names for a preset workflow.
func GetPreset(name string) ([]string, bool) {
	steps, ok := Presets[name]
	return steps, ok
}
