// Package numerator provides domain contracts for business codes.
package numerator

import (
	"strings"
	"time"

	"archivx/internal/core/apperror"
)

// Direction tags a business code with the flow of the document.
type Direction string

const (
	// DirectionIncoming marks documents received by the company.
	DirectionIncoming Direction = "IN"
	// DirectionOutgoing marks documents sent by the company.
	DirectionOutgoing Direction = "OUT"
)

// IsValid reports whether d is one of the recognized directions.
func (d Direction) IsValid() bool {
	return d == DirectionIncoming || d == DirectionOutgoing
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	return string(d)
}

// ParseDirection accepts the short tags (IN, OUT) and the record types
// (INCOMING, OUTGOING), case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "IN", "INCOMING":
		return DirectionIncoming, nil
	case "OUT", "OUTGOING":
		return DirectionOutgoing, nil
	}
	return "", apperror.NewInvalidDirection(s)
}

// Config holds business code configuration.
type Config struct {
	// Location is the timezone whose calendar date is printed in the code.
	Location *time.Location

	// DateLayout formats the date part (default "060102").
	DateLayout string

	// SegmentLength is the number of hex digits after the hyphen (default 8).
	SegmentLength int
}

// DefaultConfig returns the registry defaults: local time, YYMMDD, 8 hex digits.
func DefaultConfig() Config {
	return Config{
		Location:      time.Local,
		DateLayout:    "060102",
		SegmentLength: 8,
	}
}
