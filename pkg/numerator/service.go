// Package numerator provides the business code service.
//
// A business code has the form <DIR><YYMMDD>-<SEGMENT>, for example
// OUT250314-9F3A07C2. DIR is IN or OUT, the date is the local calendar date of
// generation and SEGMENT is taken from the random tail of a fresh sortable
// identifier. Codes only contain [A-Z0-9-] and are safe for code128.
package numerator

import (
	"context"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"archivx/internal/core/apperror"
	"archivx/internal/core/id"
	"archivx/internal/core/numerator"
)

// IDSource mints sortable identifiers. *id.Generator satisfies it.
type IDSource interface {
	New() (id.ID, error)
}

// maxSegment is the number of hex digits available in the fully random tail
// (bytes 10..15) of an identifier.
const maxSegment = 12

var codePattern = regexp.MustCompile(`^(IN|OUT)(\d{6})-([0-9A-F]{8})$`)

// Service generates business codes.
type Service struct {
	ids IDSource
	now func() time.Time
	cfg numerator.Config
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source used for the date part.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a business code service.
// A nil ids falls back to the package default identifier generator.
func New(ids IDSource, cfg numerator.Config, opts ...Option) *Service {
	if ids == nil {
		ids = id.NewGenerator()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = "060102"
	}
	if cfg.SegmentLength <= 0 || cfg.SegmentLength > maxSegment {
		cfg.SegmentLength = 8
	}

	s := &Service{
		ids: ids,
		now: time.Now,
		cfg: cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextCode implements numerator.Generator.
func (s *Service) NextCode(ctx context.Context, dir numerator.Direction) (string, error) {
	if s == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}
	if !dir.IsValid() {
		return "", apperror.NewInvalidDirection(string(dir))
	}

	v, err := s.ids.New()
	if err != nil {
		return "", fmt.Errorf("code segment: %w", err)
	}

	return s.formatCode(dir, s.now(), segment(v, s.cfg.SegmentLength)), nil
}

// Next parses a direction tag and generates the next code for it.
func (s *Service) Next(ctx context.Context, direction string) (string, error) {
	dir, err := numerator.ParseDirection(direction)
	if err != nil {
		return "", err
	}
	return s.NextCode(ctx, dir)
}

// formatCode creates the final code string.
func (s *Service) formatCode(dir numerator.Direction, at time.Time, seg string) string {
	return fmt.Sprintf("%s%s-%s", dir, at.In(s.cfg.Location).Format(s.cfg.DateLayout), seg)
}

// segment returns the last n hex digits of v, uppercased.
func segment(v id.ID, n int) string {
	digits := strings.ToUpper(hex.EncodeToString(v[:]))
	return digits[len(digits)-n:]
}

// Code is a parsed business code.
type Code struct {
	Direction numerator.Direction
	Date      time.Time
	Segment   string
}

// String formats the code back to its canonical form.
func (c Code) String() string {
	return fmt.Sprintf("%s%s-%s", c.Direction, c.Date.Format("060102"), c.Segment)
}

// FormatCode builds a code from its parts using the default layout.
func FormatCode(dir numerator.Direction, date time.Time, seg string) string {
	return Code{Direction: dir, Date: date, Segment: strings.ToUpper(seg)}.String()
}

// IsCode reports whether s is a well-formed business code.
func IsCode(s string) bool {
	return codePattern.MatchString(s)
}

// ParseCode splits a business code into its parts. The date is interpreted in loc
// (time.Local when nil).
func ParseCode(s string, loc *time.Location) (Code, error) {
	m := codePattern.FindStringSubmatch(s)
	if m == nil {
		return Code{}, apperror.NewInvalidCode(s)
	}
	if loc == nil {
		loc = time.Local
	}

	date, err := time.ParseInLocation("060102", m[2], loc)
	if err != nil {
		return Code{}, apperror.NewInvalidCode(s).WithCause(err)
	}

	return Code{
		Direction: numerator.Direction(m[1]),
		Date:      date,
		Segment:   m[3],
	}, nil
}

var _ numerator.Generator = (*Service)(nil)
