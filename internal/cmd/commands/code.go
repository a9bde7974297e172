package commands

import (
	"flag"
	"fmt"

	"archivx/internal/cmd/base"
)

// CodeCommand prints business codes.
type CodeCommand struct {
	*base.Command

	flagConfig    string
	flagDirection string
	flagCount     int
}

func (c *CodeCommand) Synopsis() string {
	return "Generate business codes for incoming or outgoing documents"
}

func (c *CodeCommand) Help() string {
	return `Usage: archivx code -direction IN|OUT [options]

  Prints business codes of the form <IN|OUT><YYMMDD>-<8 hex digits>. The date
  is taken in the configured timezone.` + c.Flags().Help()
}

func (c *CodeCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("code", flag.ContinueOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to an archivx HCL config file.")
	f.StringVar(&c.flagDirection, "direction", "", "(Required) IN or OUT (INCOMING and OUTGOING are accepted).")
	f.IntVar(&c.flagCount, "n", 1, "Number of codes to generate.")
	return f
}

func (c *CodeCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagDirection == "" {
		ui.Error("direction flag is required")
		return 1
	}
	if c.flagCount < 1 {
		ui.Error("n must be at least 1")
		return 1
	}

	app, err := c.NewApp(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}
	defer app.Close()

	ctx := c.Context()
	for i := 0; i < c.flagCount; i++ {
		code, err := app.Codes.Next(ctx, c.flagDirection)
		if err != nil {
			ui.Error(fmt.Sprintf("error generating code: %v", err))
			return 1
		}
		ui.Output(code)
	}
	return 0
}
