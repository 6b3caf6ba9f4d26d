// Package app assembles the staffmap CLI: configuration loading, logger
// setup, and command execution.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/rosterops/staffmap/cmd/staffmap/cmd"
	"github.com/rosterops/staffmap/pkg/logging"
)

// App is the assembled CLI application.
type App struct {
	version string
	commit  string
	date    string
}

// New creates the application.
func New(version, commit, date string) (*App, error) {
	return &App{version: version, commit: commit, date: date}, nil
}

// Execute parses arguments and runs the selected command.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := cmd.NewRootCommand(cmd.Version{
		Version: a.version,
		Commit:  a.commit,
		Date:    a.date,
	})
	root.SetArgs(args)

	// The logger is configured after flag parsing, inside the root
	// command's PersistentPreRunE, and attached to the context there.
	ctx = logging.WithLogger(ctx, logging.Default())
	return root.ExecuteContext(ctx)
}

// ExitOnError prints an error to stderr and exits non-zero.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
