// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/similigh/issue-gate/internal/core/config"
	"github.com/similigh/issue-gate/internal/core/event"
	"github.com/similigh/issue-gate/internal/core/failure"
	"github.com/similigh/issue-gate/internal/core/pipeline"
	"github.com/similigh/issue-gate/internal/integrations/github"
	"github.com/similigh/issue-gate/internal/tui"
)

var workflow string

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate the triggering issue or pull request and close it if it does not match",
	Long: `Evaluate the issue or pull request that triggered the workflow.

Inputs are read from flags or from the INPUT_* environment variables GitHub
Actions sets for an action (e.g. INPUT_ISSUE-PATTERN). The event payload is
read from GITHUB_EVENT_PATH and the repository from GITHUB_REPOSITORY.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAutoClose(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd.Flags())
}

func addRunFlags(flags *pflag.FlagSet) {
	flags.String(inputIssuePattern, "", "Regular expression an issue body must match")
	flags.String(inputPRPattern, "", "Regular expression a pull request body must match")
	flags.String(inputIssueCloseMessage, "", "Comment template posted before closing an issue")
	flags.String(inputPRCloseMessage, "", "Review template posted before closing a pull request")
	flags.String(inputRepoToken, "", "GitHub token used to comment and close")
	flags.Bool(inputDryRun, false, "Render and log the message without calling GitHub")
	flags.String(keyEventPath, "", "Path to the event payload JSON (default: $GITHUB_EVENT_PATH)")
	flags.String(keyRepo, "", "Repository as owner/name (default: $GITHUB_REPOSITORY)")
	flags.StringVar(&workflow, "workflow", pipeline.DefaultWorkflow, "Workflow preset to run (auto-close, evaluate-only)")
}

func runAutoClose(cmd *cobra.Command) error {
	v, err := bindInputs(cmd.Flags())
	if err != nil {
		return err
	}
	in := readInputs(v)

	level, err := resolveLogLevel(logLevel, verbose)
	if err != nil {
		return failure.Wrap(failure.ErrConfiguration, err, "invalid --log-level")
	}
	logger, err := newLogger(level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	stepNames, ok := pipeline.GetPreset(workflow)
	if !ok {
		return failure.New(failure.ErrConfiguration, fmt.Sprintf("unknown workflow %q", workflow))
	}

	var client *github.Client
	if in.RepoToken != "" {
		client, err = github.NewClientForURL(ctx, in.RepoToken, in.APIURL)
		if err != nil {
			return failure.Wrap(failure.ErrConfiguration, err, "invalid GITHUB_API_URL")
		}
	}

	cfg, err := loadConfig(ctx, in, client, logger)
	if err != nil {
		return err
	}

	ev, err := loadEvent(in, logger)
	if err != nil {
		return err
	}

	deps := &pipeline.Dependencies{
		Logger: logger,
		DryRun: in.DryRun,
	}
	if client != nil {
		deps.GitHub = client
	}

	var result *pipeline.Result
	var runErr error
	if isCI() {
		logger.Debug("Running in CI mode (no TUI)")
		result, runErr = runPipeline(ctx, deps, stepNames, ev, cfg, nil)
	} else {
		result, runErr = runWithProgress(ctx, deps, stepNames, ev, cfg)
	}

	if err := printResult(cmd.OutOrStdout(), result); err != nil {
		logger.Warn("Failed to print result", zap.Error(err))
	}
	if err := writeOutputs(os.Getenv("GITHUB_OUTPUT"), resultOutputs(result)); err != nil {
		logger.Warn("Failed to write step outputs", zap.Error(err))
	}

	return runErr
}

// runWithProgress runs the pipeline in the background while a terminal UI
// shows step progress.
func runWithProgress(ctx context.Context, deps *pipeline.Dependencies, stepNames []string, ev *event.Event, cfg *config.Config) (*pipeline.Result, error) {
	// Each step sends at most two updates; size the buffer so a user who
	// quits the UI early never blocks the pipeline.
	statusChan := make(chan tui.PipelineStatusMsg, 2*len(stepNames)+1)

	type outcome struct {
		result *pipeline.Result
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		defer close(statusChan)
		result, err := runPipeline(ctx, deps, stepNames, ev, cfg, statusChan)
		done <- outcome{result: result, err: err}
	}()

	title := fmt.Sprintf("%s/%s#%d", ev.Owner, ev.Repo, ev.Number)
	p := tea.NewProgram(tui.NewModel(title, stepNames, statusChan))
	if _, err := p.Run(); err != nil {
		deps.Log("tui").Warn("Error running TUI", zap.Error(err))
	}

	o := <-done
	return o.result, o.err
}

// loadConfig layers the action inputs over the optional config file.
func loadConfig(ctx context.Context, in actionInputs, client *github.Client, logger *zap.Logger) (*config.Config, error) {
	fileCfg := config.Default()

	path := config.FindConfigPath(cfgFile)
	switch {
	case cfgFile != "" && path == "":
		return nil, failure.New(failure.ErrConfiguration, fmt.Sprintf("config file not found: %s", cfgFile))
	case path != "":
		fetcher := func(ref string) ([]byte, error) {
			org, repo, branch, file, err := config.ParseExtendsRef(ref)
			if err != nil {
				return nil, err
			}
			if client == nil {
				return nil, fmt.Errorf("repo-token required to fetch remote config %s", ref)
			}
			return client.GetFileContent(ctx, org, repo, file, branch)
		}

		loaded, err := config.LoadWithInheritance(path, fetcher)
		if err != nil {
			return nil, failure.Wrap(failure.ErrConfiguration, err, fmt.Sprintf("failed to load config from %s", path))
		}
		logger.Debug("Loaded config", zap.String("path", path))
		fileCfg = loaded
	default:
		logger.Debug("No configuration file found, using action inputs only")
	}

	return config.Merge(fileCfg, in.overlay()), nil
}

// loadEvent reads the triggering event. A missing payload is treated as an
// empty event, which the pipeline ignores.
func loadEvent(in actionInputs, logger *zap.Logger) (*event.Event, error) {
	if in.EventPath != "" {
		ev, err := event.Load(in.EventPath, in.Repository)
		if err == nil {
			logger.Debug("Loaded event", zap.String("path", in.EventPath), zap.String("action", ev.Action))
			return ev, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, failure.Wrap(failure.ErrConfiguration, err, "failed to load event payload")
		}
		logger.Warn("Event payload not found", zap.String("path", in.EventPath))
	} else {
		logger.Warn("No event payload path set (GITHUB_EVENT_PATH or --event-path)")
	}

	return event.Parse([]byte("{}"), in.Repository)
}

func printResult(w io.Writer, result *pipeline.Result) error {
	if result == nil {
		return nil
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func resultOutputs(result *pipeline.Result) []output {
	if result == nil {
		return nil
	}
	return []output{
		{Name: "outcome", Value: string(result.Outcome)},
		{Name: "closed", Value: strconv.FormatBool(result.Closed)},
	}
}
