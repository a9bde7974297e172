package base

import (
	"fmt"
	"time"

	"archivx/internal/config"
	"archivx/internal/core/id"
	"archivx/internal/core/numerator"
	"archivx/internal/domain/audit"
	"archivx/internal/domain/correspondence"
	"archivx/internal/domain/receipt"
	"archivx/internal/infrastructure/barcode"
	"archivx/internal/infrastructure/pdf"
	"archivx/pkg/logger"
	pkgnumerator "archivx/pkg/numerator"
)

// App is the set of services built from one configuration.
type App struct {
	Config    *config.Config
	Location  *time.Location
	Log       *logger.Logger
	IDs       *id.Generator
	Codes     *pkgnumerator.Service
	Recorder  *audit.Recorder
	Registrar *correspondence.Registrar
	Receipts  *receipt.Renderer
}

// NewApp loads configPath (may be empty) and wires the services. The command
// logger is replaced by one built from the loaded configuration.
func (c *Command) NewApp(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	c.Log = log

	ids := id.NewGenerator()
	codes := pkgnumerator.New(ids, numerator.Config{Location: loc})

	recorder, err := audit.NewRecorder(audit.LogSink{Log: log.WithComponent("audit")}, ids, cfg.Audit.CompressThreshold)
	if err != nil {
		return nil, err
	}

	fonts, err := receiptFonts(log, cfg.Receipt)
	if err != nil {
		recorder.Close()
		return nil, err
	}

	receiptOpts := receipt.Options{
		Title:      cfg.Receipt.Title,
		Footer:     cfg.Receipt.Footer,
		Location:   loc,
		DateLayout: cfg.Receipt.DateLayout,
	}

	return &App{
		Config:    cfg,
		Location:  loc,
		Log:       log,
		IDs:       ids,
		Codes:     codes,
		Recorder:  recorder,
		Registrar: correspondence.NewRegistrar(ids, codes, recorder, correspondence.WithLocation(loc)),
		Receipts: receipt.NewRenderer(pdf.Factory(fonts), barcode.NewEncoder(), receiptOpts,
			receipt.WithRecorder(recorder)),
	}, nil
}

// receiptFonts loads the configured faces, or the Go fonts when none is set.
func receiptFonts(log *logger.Logger, rc *config.ReceiptConfig) (pdf.Fonts, error) {
	if rc.FontRegular == "" {
		log.Warnw("no receipt font configured, Arabic glyphs will be missing",
			"setting", "receipt.font_regular")
		return pdf.GoFonts(), nil
	}
	return pdf.LoadFonts(rc.FontRegular, rc.FontBold)
}

// Close releases the app resources.
func (a *App) Close() {
	a.Recorder.Close()
	_ = a.Log.Sync()
}
