// Package config loads the archivx settings: defaults, then an optional HCL
// file, then ARCHIVX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"archivx/internal/domain/correspondence"
)

// Config is the full application configuration.
type Config struct {
	// Timezone names the IANA zone used for business code dates and document dates.
	Timezone string `hcl:"timezone,optional"`

	Log     *LogConfig              `hcl:"log,block"`
	Company *correspondence.Company `hcl:"company,block"`
	Receipt *ReceiptConfig          `hcl:"receipt,block"`
	Audit   *AuditConfig            `hcl:"audit,block"`
}

// LogConfig configures pkg/logger.
type LogConfig struct {
	Level       string `hcl:"level,optional"`
	Development bool   `hcl:"development,optional"`
}

// ReceiptConfig configures receipt rendering.
type ReceiptConfig struct {
	// FontRegular and FontBold are TrueType files with Arabic coverage.
	// Empty falls back to the bundled Go fonts.
	FontRegular string `hcl:"font_regular,optional"`
	FontBold    string `hcl:"font_bold,optional"`
	Title       string `hcl:"title,optional"`
	Footer      string `hcl:"footer,optional"`
	DateLayout  string `hcl:"date_layout,optional"`
}

// AuditConfig configures the audit recorder.
type AuditConfig struct {
	// CompressThreshold is the payload size in bytes above which changes are zstd compressed.
	CompressThreshold int `hcl:"compress_threshold,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timezone: "Local",
		Log:      &LogConfig{Level: "info"},
		Company: &correspondence.Company{
			NameAr: "أرشيف إكس",
			NameEn: "ArchivX",
		},
		Receipt: &ReceiptConfig{
			Title:      "إيصال استلام معاملة",
			Footer:     "تم إصدار هذا المستند إلكترونياً من نظام ArchivX",
			DateLayout: "2006/01/02",
		},
		Audit: &AuditConfig{CompressThreshold: 10 * 1024},
	}
}

// Load builds the configuration. path may be empty to skip the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		var file Config
		if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg.merge(&file)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge copies every non-zero setting of o into c.
func (c *Config) merge(o *Config) {
	setString(&c.Timezone, o.Timezone)

	if o.Log != nil {
		setString(&c.Log.Level, o.Log.Level)
		c.Log.Development = c.Log.Development || o.Log.Development
	}
	if o.Company != nil {
		setString(&c.Company.ID, o.Company.ID)
		setString(&c.Company.NameAr, o.Company.NameAr)
		setString(&c.Company.NameEn, o.Company.NameEn)
		setString(&c.Company.LogoURL, o.Company.LogoURL)
	}
	if o.Receipt != nil {
		setString(&c.Receipt.FontRegular, o.Receipt.FontRegular)
		setString(&c.Receipt.FontBold, o.Receipt.FontBold)
		setString(&c.Receipt.Title, o.Receipt.Title)
		setString(&c.Receipt.Footer, o.Receipt.Footer)
		setString(&c.Receipt.DateLayout, o.Receipt.DateLayout)
	}
	if o.Audit != nil && o.Audit.CompressThreshold != 0 {
		c.Audit.CompressThreshold = o.Audit.CompressThreshold
	}
}

func (c *Config) applyEnv() {
	c.Timezone = getEnv("ARCHIVX_TIMEZONE", c.Timezone)
	c.Log.Level = getEnv("ARCHIVX_LOG_LEVEL", c.Log.Level)
	c.Log.Development = getEnvBool("ARCHIVX_LOG_DEVELOPMENT", c.Log.Development)
	c.Company.ID = getEnv("ARCHIVX_COMPANY_ID", c.Company.ID)
	c.Company.NameAr = getEnv("ARCHIVX_COMPANY_NAME_AR", c.Company.NameAr)
	c.Company.NameEn = getEnv("ARCHIVX_COMPANY_NAME_EN", c.Company.NameEn)
	c.Receipt.FontRegular = getEnv("ARCHIVX_FONT_REGULAR", c.Receipt.FontRegular)
	c.Receipt.FontBold = getEnv("ARCHIVX_FONT_BOLD", c.Receipt.FontBold)
	c.Audit.CompressThreshold = getEnvInt("ARCHIVX_AUDIT_COMPRESS_THRESHOLD", c.Audit.CompressThreshold)
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Timezone, validation.Required, validation.By(validTimezone)),
		validation.Field(&c.Log),
		validation.Field(&c.Company),
		validation.Field(&c.Receipt),
		validation.Field(&c.Audit),
	)
}

// Validate implements validation.Validatable.
func (l *LogConfig) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
	)
}

// Validate implements validation.Validatable.
func (r *ReceiptConfig) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FontBold, validation.When(r.FontRegular == "", validation.Empty.Error("requires font_regular"))),
	)
}

// Validate implements validation.Validatable.
func (a *AuditConfig) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.CompressThreshold, validation.Min(0)),
	)
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// CompanyInfo returns the configured issuing company.
func (c *Config) CompanyInfo() correspondence.Company {
	return *c.Company
}

func validTimezone(value any) error {
	s, _ := value.(string)
	if _, err := time.LoadLocation(s); err != nil {
		return errors.New("must be a valid IANA timezone")
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
