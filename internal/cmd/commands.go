package cmd

import (
	"github.com/mitchellh/cli"

	"archivx/internal/cmd/base"
	"archivx/internal/cmd/commands"
	"archivx/pkg/logger"
)

// Commands is the mapping of all available archivx commands.
var Commands map[string]cli.CommandFactory

func initCommands(log *logger.Logger, ui cli.Ui) {
	b := func() *base.Command { return base.NewCommand(log, ui) }

	Commands = map[string]cli.CommandFactory{
		"id": func() (cli.Command, error) {
			return &commands.IDCommand{Command: b()}, nil
		},
		"code": func() (cli.Command, error) {
			return &commands.CodeCommand{Command: b()}, nil
		},
		"shape": func() (cli.Command, error) {
			return &commands.ShapeCommand{Command: b()}, nil
		},
		"register": func() (cli.Command, error) {
			return &commands.RegisterCommand{Command: b()}, nil
		},
		"receipt": func() (cli.Command, error) {
			return &commands.ReceiptCommand{Command: b()}, nil
		},
		"report": func() (cli.Command, error) {
			return &commands.ReportCommand{Command: b()}, nil
		},
		"lookup": func() (cli.Command, error) {
			return &commands.LookupCommand{Command: b()}, nil
		},
	}
}
