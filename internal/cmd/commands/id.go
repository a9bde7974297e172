package commands

import (
	"flag"
	"fmt"

	"archivx/internal/cmd/base"
	"archivx/internal/core/id"
)

// IDCommand prints sortable identifiers.
type IDCommand struct {
	*base.Command

	flagCount int
}

func (c *IDCommand) Synopsis() string {
	return "Generate sortable record identifiers"
}

func (c *IDCommand) Help() string {
	return `Usage: archivx id [options]

  Prints time-ordered identifiers, one per line. Identifiers generated later
  sort after earlier ones.` + c.Flags().Help()
}

func (c *IDCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("id", flag.ContinueOnError))
	f.IntVar(&c.flagCount, "n", 1, "Number of identifiers to generate.")
	return f
}

func (c *IDCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagCount < 1 {
		ui.Error("n must be at least 1")
		return 1
	}

	gen := id.NewGenerator()
	for i := 0; i < c.flagCount; i++ {
		v, err := gen.NewString()
		if err != nil {
			ui.Error(fmt.Sprintf("error generating identifier: %v", err))
			return 1
		}
		ui.Output(v)
	}
	return 0
}
