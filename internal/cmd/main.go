// Package cmd is the archivx command line entry point.
package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	"archivx/internal/core/id"
	"archivx/internal/version"
	"archivx/pkg/logger"
)

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	cliName := args[0]

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	// No command can run without the secure random source.
	if err := id.CheckEntropy(); err != nil {
		ui.Error(fmt.Sprintf("startup check failed: %v", err))
		return 1
	}

	initCommands(logger.Default().WithComponent(cliName), ui)

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  version.Version,
		Commands: Commands,
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	return exitCode
}
