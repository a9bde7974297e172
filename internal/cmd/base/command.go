// Package base holds what every archivx command shares: UI, logger, flags and
// the wiring of domain services from configuration.
package base

import (
	"context"

	"github.com/mitchellh/cli"

	"archivx/pkg/logger"
)

// Command is embedded by every command.
type Command struct {
	Log *logger.Logger
	UI  cli.Ui
}

// NewCommand creates the shared command state.
func NewCommand(log *logger.Logger, ui cli.Ui) *Command {
	return &Command{Log: log, UI: ui}
}

// Context returns a context carrying the command logger.
func (c *Command) Context() context.Context {
	return logger.WithLogger(context.Background(), c.Log)
}
