// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/sethvargo/go-githubactions"

	"github.com/similigh/issue-gate/internal/core/failure"
)

// output is one name=value pair written to $GITHUB_OUTPUT.
type output struct {
	Name  string
	Value string
}

// isCI reports whether the process runs inside a CI runner.
func isCI() bool {
	return os.Getenv("CI") == "true" || os.Getenv("GITHUB_ACTIONS") == "true"
}

// ReportError reports err to the workflow as an ::error:: command in CI,
// and as a plain message on errOut otherwise.
func ReportError(out, errOut io.Writer, err error) {
	msg := failure.Message(err)
	if isCI() {
		githubactions.New(githubactions.WithWriter(out)).Errorf("%s", msg)
		return
	}
	fmt.Fprintf(errOut, "Error: %s\n", msg)
}

// writeOutputs appends outputs to the file named by path. An empty path is a
// no-op; the deprecated ::set-output stdout form is never used.
func writeOutputs(path string, outputs []output) error {
	if path == "" {
		return nil
	}

	action := githubactions.New(
		githubactions.WithWriter(io.Discard),
		githubactions.WithGetenv(func(key string) string {
			if key == "GITHUB_OUTPUT" {
				return path
			}
			return os.Getenv(key)
		}),
	)

	// The runner creates the file; create it here too so a bad path fails
	// with an error rather than inside the library.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	for _, o := range outputs {
		action.SetOutput(o.Name, o.Value)
	}
	return nil
}
