package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"archivx/internal/cmd/base"
	appctx "archivx/internal/core/context"
	"archivx/internal/domain/correspondence"
)

// RegisterCommand validates and registers correspondence records.
type RegisterCommand struct {
	*base.Command

	flagConfig  string
	flagIn      string
	flagOut     string
	flagCompany string
	flagUser    string
}

func (c *RegisterCommand) Synopsis() string {
	return "Register incoming or outgoing correspondence"
}

func (c *RegisterCommand) Help() string {
	return `Usage: archivx register -in record.json [options]

  Validates one record (a JSON object) or a batch (a JSON array), assigns each
  an identifier and a business code and prints the registered records as JSON.
  Invalid records of a batch are reported together; valid ones are still
  registered.` + c.Flags().Help()
}

func (c *RegisterCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("register", flag.ContinueOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to an archivx HCL config file.")
	f.StringVar(&c.flagIn, "in", "", `(Required) JSON input file, or "-" for standard input.`)
	f.StringVar(&c.flagOut, "out", "", "Write the registered records to this file instead of standard output.")
	f.StringVar(&c.flagCompany, "company", "", "Owning company ID (defaults to company.id from the config).")
	f.StringVar(&c.flagUser, "user", os.Getenv("USER"), "User recorded as creator.")
	return f
}

func (c *RegisterCommand) Run(args []string) int {
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

	companyID := firstNonEmpty(c.flagCompany, app.Config.Company.ID)
	if companyID == "" {
		ui.Error("company flag is required when company.id is not configured")
		return 1
	}

	data, err := readInput(c.flagIn)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	inputs, err := decodeOneOrMany[correspondence.CreateInput](data)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx := actorContext(c.Context(), c.flagUser, companyID)

	var (
		records []*correspondence.Correspondence
		result  *multierror.Error
	)
	for i, in := range inputs {
		doc, err := app.Registrar.Register(ctx, companyID, in)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("record %d: %w", i+1, err))
			continue
		}
		records = append(records, doc)
	}

	var out any = records
	if !isJSONArray(data) && len(records) == 1 {
		out = records[0]
	}
	if len(records) > 0 {
		if err := c.write(out); err != nil {
			ui.Error(err.Error())
			return 1
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

func (c *RegisterCommand) write(v any) error {
	text, err := marshalIndent(v)
	if err != nil {
		return err
	}
	if c.flagOut == "" {
		c.UI.Output(text)
		return nil
	}
	if err := os.WriteFile(c.flagOut, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.flagOut, err)
	}
	return nil
}

func actorContext(ctx context.Context, user, companyID string) context.Context {
	if user == "" {
		return ctx
	}
	return appctx.WithActor(ctx, &appctx.Actor{UserID: user, CompanyID: companyID})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
