package numerator

import (
	"context"
)

// Generator produces business codes.
// This is the domain contract; the implementation lives in pkg/numerator.
type Generator interface {
	// NextCode returns a code of the form <DIR><YYMMDD>-<SEGMENT>,
	// e.g. IN250314-9F3A07C2.
	NextCode(ctx context.Context, dir Direction) (string, error)
}
