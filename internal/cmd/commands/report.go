package commands

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-multierror"

	"archivx/internal/cmd/base"
	"archivx/internal/core/numerator"
	"archivx/internal/domain/audit"
	"archivx/internal/domain/correspondence"
	"archivx/internal/domain/reports"
)

// ReportCommand summarizes registered records and exports them as CSV.
type ReportCommand struct {
	*base.Command

	flagConfig string
	flagIn     string
	flagCSV    string
	flagType   string
	flagFrom   string
	flagTo     string
	flagLimit  int
	flagUser   string
}

// reportOutput is the JSON printed by the report command.
type reportOutput struct {
	Filter struct {
		Type string     `json:"type,omitempty"`
		From *time.Time `json:"from,omitempty"`
		To   *time.Time `json:"to,omitempty"`
	} `json:"filter"`
	Skipped int             `json:"skipped"`
	Journal reports.Journal `json:"journal"`
}

func (c *ReportCommand) Synopsis() string {
	return "Summarize registered correspondence and export CSV"
}

func (c *ReportCommand) Help() string {
	return `Usage: archivx report -in records.json [options]

  Reads registered records (a JSON array), filters them by type and document
  date period and prints the newest records with a summary per direction, status,
  priority and security level. With -csv every matching record is exported
  with a UTF-8 byte order mark. Invalid records are skipped and reported.` + c.Flags().Help()
}

func (c *ReportCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("report", flag.ContinueOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to an archivx HCL config file.")
	f.StringVar(&c.flagIn, "in", "", `(Required) JSON records file, or "-" for standard input.`)
	f.StringVar(&c.flagCSV, "csv", "", "Export matching records to this CSV file.")
	f.StringVar(&c.flagType, "type", "", "Only IN/INCOMING or OUT/OUTGOING records.")
	f.StringVar(&c.flagFrom, "from", "", "Earliest document date, in any common layout.")
	f.StringVar(&c.flagTo, "to", "", "Latest document date, in any common layout.")
	f.IntVar(&c.flagLimit, "limit", 50, "Number of records listed in the output.")
	f.StringVar(&c.flagUser, "user", os.Getenv("USER"), "User recorded in the audit log.")
	return f
}

func (c *ReportCommand) Run(args []string) int {
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

	app, err := c.NewApp(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}
	defer app.Close()

	filter, err := c.filter(app.Location)
	if err != nil {
		ui.Error(err.Error())
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

	ctx := actorContext(c.Context(), c.flagUser, app.Config.Company.ID)

	var (
		valid   []*correspondence.Correspondence
		invalid *multierror.Error
	)
	for i, rec := range records {
		if rec == nil {
			invalid = multierror.Append(invalid, fmt.Errorf("record %d: null", i+1))
			continue
		}
		if err := rec.Validate(ctx); err != nil {
			invalid = multierror.Append(invalid, fmt.Errorf("record %d (%s): %w", i+1, rec.Code, err))
			continue
		}
		valid = append(valid, rec)
	}
	if err := invalid.ErrorOrNil(); err != nil {
		ui.Warn(err.Error())
	}

	repo := reports.NewMemoryRepository(valid...)
	journal, err := reports.NewService(repo).GetJournal(ctx, filter)
	if err != nil {
		ui.Error(fmt.Sprintf("error building report: %v", err))
		return 1
	}

	if c.flagCSV != "" {
		matching, err := repo.List(ctx, filter)
		if err != nil {
			ui.Error(fmt.Sprintf("error listing records: %v", err))
			return 1
		}
		var buf bytes.Buffer
		if err := reports.WriteCSV(&buf, matching); err != nil {
			ui.Error(fmt.Sprintf("error writing csv: %v", err))
			return 1
		}
		if err := os.WriteFile(c.flagCSV, buf.Bytes(), 0o644); err != nil {
			ui.Error(fmt.Sprintf("error writing %s: %v", c.flagCSV, err))
			return 1
		}
		if err := app.Recorder.Record(ctx, audit.Entry{
			Action:     audit.ActionExportReport,
			EntityType: "report",
			Details:    fmt.Sprintf("%d records exported to %s", len(matching), c.flagCSV),
		}); err != nil {
			app.Log.Warnw("report audit failed", "error", err)
		}
	}

	out := reportOutput{Skipped: len(records) - len(valid), Journal: *journal}
	out.Filter.Type = string(filter.Type)
	if !filter.From.IsZero() {
		out.Filter.From = &filter.From
	}
	if !filter.To.IsZero() {
		out.Filter.To = &filter.To
	}

	text, err := marshalIndent(out)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	ui.Output(text)
	return 0
}

func (c *ReportCommand) filter(loc *time.Location) (reports.Filter, error) {
	filter := reports.Filter{Limit: c.flagLimit}

	if c.flagType != "" {
		dir, err := numerator.ParseDirection(c.flagType)
		if err != nil {
			return filter, err
		}
		filter.Type = correspondence.TypeIncoming
		if dir == numerator.DirectionOutgoing {
			filter.Type = correspondence.TypeOutgoing
		}
	}

	if c.flagFrom != "" {
		from, err := dateparse.ParseIn(c.flagFrom, loc, dateparse.PreferMonthFirst(false))
		if err != nil {
			return filter, fmt.Errorf("invalid from date %q: %w", c.flagFrom, err)
		}
		filter.From = from
	}
	if c.flagTo != "" {
		to, err := dateparse.ParseIn(c.flagTo, loc, dateparse.PreferMonthFirst(false))
		if err != nil {
			return filter, fmt.Errorf("invalid to date %q: %w", c.flagTo, err)
		}
		// a bare date covers the whole day
		if to.Hour() == 0 && to.Minute() == 0 && to.Second() == 0 && to.Nanosecond() == 0 {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filter.To = to
	}

	return filter, nil
}
