package commands

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"archivx/internal/cmd/base"
	"archivx/internal/domain/correspondence"
)

// ReceiptCommand renders the registration receipt of a record as PDF.
type ReceiptCommand struct {
	*base.Command

	flagConfig  string
	flagIn      string
	flagOut     string
	flagCompany string
	flagUser    string
}

func (c *ReceiptCommand) Synopsis() string {
	return "Print the official receipt of a record as PDF"
}

func (c *ReceiptCommand) Help() string {
	return `Usage: archivx receipt -in record.json -out receipt.pdf [options]

  Renders an A4 receipt with the company header, a code128 barcode of the
  business code and the record fields. A record without a business code
  ("barcodeId") is registered first.` + c.Flags().Help()
}

func (c *ReceiptCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("receipt", flag.ContinueOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to an archivx HCL config file.")
	f.StringVar(&c.flagIn, "in", "", `(Required) JSON record file, or "-" for standard input.`)
	f.StringVar(&c.flagOut, "out", "", "(Required) PDF output file.")
	f.StringVar(&c.flagCompany, "company", "", "Owning company ID used when the record must be registered.")
	f.StringVar(&c.flagUser, "user", os.Getenv("USER"), "User recorded in the audit log.")
	return f
}

func (c *ReceiptCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagIn == "" || c.flagOut == "" {
		ui.Error("in and out flags are required")
		return 1
	}

	app, err := c.NewApp(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}
	defer app.Close()

	data, err := readInput(c.flagIn)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	var probe struct {
		Code      string `json:"barcodeId"`
		CompanyID string `json:"companyId"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		ui.Error(fmt.Sprintf("error decoding record: %v", err))
		return 1
	}

	companyID := firstNonEmpty(probe.CompanyID, c.flagCompany, app.Config.Company.ID, "default")
	ctx := actorContext(c.Context(), c.flagUser, companyID)

	var record *correspondence.Correspondence
	if probe.Code != "" {
		record = &correspondence.Correspondence{}
		if err := json.Unmarshal(data, record); err != nil {
			ui.Error(fmt.Sprintf("error decoding record: %v", err))
			return 1
		}
	} else {
		var in correspondence.CreateInput
		if err := json.Unmarshal(data, &in); err != nil {
			ui.Error(fmt.Sprintf("error decoding record: %v", err))
			return 1
		}
		record, err = app.Registrar.Register(ctx, companyID, in)
		if err != nil {
			ui.Error(fmt.Sprintf("error registering record: %v", err))
			return 1
		}
		ui.Info(fmt.Sprintf("registered %s", record.Code))
	}

	var buf bytes.Buffer
	if err := app.Receipts.Render(ctx, record, app.Config.CompanyInfo(), &buf); err != nil {
		ui.Error(fmt.Sprintf("error rendering receipt: %v", err))
		return 1
	}
	if err := os.WriteFile(c.flagOut, buf.Bytes(), 0o644); err != nil {
		ui.Error(fmt.Sprintf("error writing %s: %v", c.flagOut, err))
		return 1
	}

	ui.Output(fmt.Sprintf("receipt for %s written to %s", record.Code, c.flagOut))
	return 0
}
