package commands

import (
	"flag"
	"fmt"

	"archivx/internal/cmd/base"
	"archivx/internal/core/apperror"
	"archivx/internal/domain/correspondence"
	"archivx/internal/domain/reports"
)

// LookupCommand finds a registered record by its business code.
type LookupCommand struct {
	*base.Command

	flagIn   string
	flagCode string
}

func (c *LookupCommand) Synopsis() string {
	return "Find a registered record by business code"
}

func (c *LookupCommand) Help() string {
	return `Usage: archivx lookup -in records.json [options] [CODE]

  Prints the registered record carrying the given business code, such as a
  code read back from a receipt barcode. Case and surrounding space are
  ignored. A malformed code and an unknown code are both errors.` + c.Flags().Help()
}

func (c *LookupCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("lookup", flag.ContinueOnError))
	f.StringVar(&c.flagIn, "in", "", `(Required) JSON records file, or "-" for standard input.`)
	f.StringVar(&c.flagCode, "code", "", "Business code to find. May be given as the argument instead.")
	return f
}

func (c *LookupCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagIn == "" {
		ui.Error("in flag is required")
		return 1
	}
	code := firstNonEmpty(c.flagCode, flags.Arg(0))
	if code == "" {
		ui.Error("a business code is required")
		return 1
	}

	data, err := readInput(c.flagIn)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	records, err := decodeOneOrMany[*correspondence.Correspondence](data)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	repo := reports.NewMemoryRepository()
	for _, rec := range records {
		if rec != nil {
			repo.Add(rec)
		}
	}

	rec, err := repo.GetByCode(c.Context(), code)
	switch {
	case apperror.IsNotFound(err):
		ui.Error(fmt.Sprintf("no record with code %s", code))
		return 1
	case err != nil:
		ui.Error(err.Error())
		return 1
	}

	text, err := marshalIndent(rec)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	ui.Output(text)
	return 0
}
