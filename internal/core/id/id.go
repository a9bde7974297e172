// Package id provides sortable identifiers for all registry records.
//
// Identifiers use the UUIDv7 layout: a 48-bit Unix millisecond timestamp in the
// first six bytes followed by random bits, so the canonical string form sorts by
// creation time. Of the remaining 80 bits, 6 are taken by the version and variant
// fields and 74 come from the random source.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"time"

	"github.com/google/uuid"

	"archivx/internal/core/apperror"
)

// ID is a type alias for UUID, used across all records.
type ID = uuid.UUID

// Generator mints sortable identifiers from an injected clock and random source.
// A Generator holds no mutable state and is safe for concurrent use as long as the
// random source is.
type Generator struct {
	rand io.Reader
	now  func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source. Tests pass a deterministic reader.
func WithRand(r io.Reader) Option {
	return func(g *Generator) { g.rand = r }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a Generator reading crypto/rand and the system clock
// unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rand: rand.Reader,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// New returns a fresh identifier.
// A failed read of the random source is returned as ENTROPY_UNAVAILABLE; there
// is no fallback to a weaker source.
func (g *Generator) New() (ID, error) {
	var b [16]byte
	if _, err := io.ReadFull(g.rand, b[6:]); err != nil {
		return uuid.Nil, apperror.NewEntropyUnavailable(err)
	}

	var ms [8]byte
	binary.BigEndian.PutUint64(ms[:], uint64(g.now().UnixMilli()))
	copy(b[:6], ms[2:])

	b[6] = 0x70 | (b[6] & 0x0f) // version 7
	b[8] = 0x80 | (b[8] & 0x3f) // variant 10

	return ID(b), nil
}

// NewString returns a fresh identifier in canonical 8-4-4-4-12 form.
func (g *Generator) NewString() (string, error) {
	v, err := g.New()
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// MustNew is like New but panics if the random source fails.
func (g *Generator) MustNew() ID {
	v, err := g.New()
	if err != nil {
		panic(err)
	}
	return v
}

var defaultGenerator = NewGenerator()

// New generates a new identifier with the default generator.
// It panics when the system random source fails; run CheckEntropy at startup
// to turn that into a clean abort.
func New() ID {
	return defaultGenerator.MustNew()
}

// NewString generates a new identifier string with the default generator.
func NewString() string {
	return New().String()
}

// CheckEntropy verifies that the system random source can be read.
func CheckEntropy() error {
	_, err := defaultGenerator.New()
	return err
}

// Time returns the creation time embedded in a sortable identifier.
func Time(v ID) time.Time {
	var ms [8]byte
	copy(ms[2:], v[:6])
	return time.UnixMilli(int64(binary.BigEndian.Uint64(ms[:])))
}

// Parse converts string to ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts string to ID, panics on error.
// Use only for constants and tests.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Validate checks that s is a canonical sortable identifier: 36 characters,
// version 7 and the RFC 4122 variant.
func Validate(s string) error {
	if len(s) != 36 {
		return apperror.NewInvalidID(s, nil).WithDetail("reason", "length")
	}
	v, err := uuid.Parse(s)
	if err != nil {
		return apperror.NewInvalidID(s, err)
	}
	if v.Version() != 7 {
		return apperror.NewInvalidID(s, nil).WithDetail("reason", "version")
	}
	if v.Variant() != uuid.RFC4122 {
		return apperror.NewInvalidID(s, nil).WithDetail("reason", "variant")
	}
	return nil
}

// Nil returns zero-value UUID.
func Nil() ID {
	return uuid.Nil
}

// IsNil checks if ID is zero-value.
func IsNil(v ID) bool {
	return v == uuid.Nil
}
