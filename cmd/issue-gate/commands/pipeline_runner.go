// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-14

package commands

import (
	"context"
	"errors"

	"github.com/similigh/issue-gate/internal/core/config"
	"github.com/similigh/issue-gate/internal/core/event"
	"github.com/similigh/issue-gate/internal/core/pipeline"
	"github.com/similigh/issue-gate/internal/steps"
	"github.com/similigh/issue-gate/internal/tui"
)

// Wrapper step to send status updates
type statusReportingStep struct {
	inner      pipeline.Step
	statusChan chan<- tui.PipelineStatusMsg
}

func (s *statusReportingStep) Name() string {
	return s.inner.Name()
}

func (s *statusReportingStep) Run(ctx *pipeline.Context) error {
	s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusStarted, Message: "Starting..."}

	err := s.inner.Run(ctx)

	if err != nil {
		if errors.Is(err, pipeline.ErrSkipPipeline) {
			s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusSkipped, Message: ctx.Result.SkipReason}
			return err
		}
		s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusError, Message: err.Error()}
		return err
	}

	s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusSuccess, Message: "Completed"}
	return nil
}

// buildPipeline builds the named steps, wrapping each with status reporting
// when statusChan is non-nil.
func buildPipeline(deps *pipeline.Dependencies, stepNames []string, statusChan chan<- tui.PipelineStatusMsg) (*pipeline.Pipeline, error) {
	registry := pipeline.NewRegistry()
	steps.RegisterAll(registry)

	built, err := registry.BuildFromNames(stepNames, deps)
	if err != nil {
		return nil, err
	}
	if statusChan == nil {
		return built, nil
	}

	var wrapped []pipeline.Step
	for _, step := range built.Steps() {
		wrapped = append(wrapped, &statusReportingStep{inner: step, statusChan: statusChan})
	}
	return pipeline.New(wrapped...), nil
}

// runPipeline runs the steps against ev and returns the run result. The
// result is populated even when err is non-nil.
func runPipeline(ctx context.Context, deps *pipeline.Dependencies, stepNames []string, ev *event.Event, cfg *config.Config, statusChan chan<- tui.PipelineStatusMsg) (*pipeline.Result, error) {
	pCtx := pipeline.NewContext(ctx, ev, cfg)

	p, err := buildPipeline(deps, stepNames, statusChan)
	if err != nil {
		if statusChan != nil {
			statusChan <- tui.PipelineStatusMsg{Step: "init", Status: tui.StatusError, Message: err.Error()}
		}
		pCtx.Result.Outcome = pipeline.OutcomeFailed
		pCtx.Result.Error = err.Error()
		return pCtx.Result, err
	}

	err = p.Run(pCtx)
	return pCtx.Result, err
}
