// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/similigh/issue-gate/internal/core/event"
	"github.com/similigh/issue-gate/internal/core/failure"
	"github.com/similigh/issue-gate/internal/utils/text"
)

var (
	renderTemplate     string
	renderTemplateFile string
	renderEventPath    string
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a close-message template against an event payload",
	Long: `Render a close-message template against an event payload and print the result.
Use it to check a template before adding it to a workflow:

  issue-gate render --template 'Hi ${sender.login}, please use the template.' --event event.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template text")
	renderCmd.Flags().StringVarP(&renderTemplateFile, "template-file", "f", "", "Read the template from a file")
	renderCmd.Flags().StringVarP(&renderEventPath, "event", "e", "", "Path to the event payload JSON")
	_ = renderCmd.MarkFlagRequired("event")
}

func runRender(w io.Writer) error {
	src := renderTemplate
	if renderTemplateFile != "" {
		data, err := os.ReadFile(renderTemplateFile)
		if err != nil {
			return failure.Wrap(failure.ErrConfiguration, err, "failed to read template file")
		}
		src = string(data)
	}
	if src == "" {
		return failure.New(failure.ErrConfiguration, "one of --template or --template-file is required")
	}

	ev, err := event.Load(renderEventPath, "")
	if err != nil {
		return failure.Wrap(failure.ErrConfiguration, err, "failed to load event payload")
	}

	message, err := text.Render(src, ev.Payload)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, message)
	return err
}
