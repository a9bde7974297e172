package numerator

import (
	"context"
)

// MockGenerator is a test implementation of Generator.
type MockGenerator struct {
	NextCodeFunc func(ctx context.Context, dir Direction) (string, error)
}

// NextCode implements Generator.
func (m *MockGenerator) NextCode(ctx context.Context, dir Direction) (string, error) {
	if m.NextCodeFunc != nil {
		return m.NextCodeFunc(ctx, dir)
	}
	// Default: return predictable mock code
	return string(dir) + "260101-00000001", nil
}

// Ensure compile-time interface compliance.
var _ Generator = (*MockGenerator)(nil)
