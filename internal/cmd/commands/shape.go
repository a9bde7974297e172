package commands

import (
	"bufio"
	"flag"
	"fmt"
	"strings"

	"archivx/internal/cmd/base"
	"archivx/pkg/textshape"
)

// ShapeCommand prints text in visual order.
type ShapeCommand struct {
	*base.Command

	flagDir    string
	flagLevels bool
}

func (c *ShapeCommand) Synopsis() string {
	return "Shape and reorder Arabic text for display"
}

func (c *ShapeCommand) Help() string {
	return `Usage: archivx shape [options] [TEXT...]

  Converts logical-order text to the visual order expected by renderers
  without bidi support: Arabic letters take their contextual forms, runs are
  reordered and brackets are mirrored. Without arguments each line of
  standard input is shaped.` + c.Flags().Help()
}

func (c *ShapeCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("shape", flag.ContinueOnError))
	f.StringVar(&c.flagDir, "dir", "auto", "Paragraph direction: auto, ltr or rtl.")
	f.BoolVar(&c.flagLevels, "levels", false, "Also print the resolved embedding level of every character.")
	return f
}

func (c *ShapeCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	var dir textshape.Direction
	switch strings.ToLower(c.flagDir) {
	case "auto", "":
		dir = textshape.Auto
	case "ltr":
		dir = textshape.LeftToRight
	case "rtl":
		dir = textshape.RightToLeft
	default:
		ui.Error(fmt.Sprintf("unknown direction %q", c.flagDir))
		return 1
	}
	shaper := textshape.New(dir)

	emit := func(line string) {
		ui.Output(shaper.Display(line))
		if c.flagLevels {
			ui.Output(fmt.Sprint(shaper.Levels(line)))
		}
	}

	if rest := flags.Args(); len(rest) > 0 {
		emit(strings.Join(rest, " "))
		return 0
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		emit(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		ui.Error(fmt.Sprintf("error reading input: %v", err))
		return 1
	}
	return 0
}
