package reports

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"archivx/internal/core/apperror"
	"archivx/internal/core/id"
	"archivx/internal/domain/correspondence"
	"archivx/pkg/numerator"
)

// Repository defines journal data access.
type Repository interface {
	// List returns every record matching filter, newest first. Pagination is ignored.
	List(ctx context.Context, filter Filter) ([]*correspondence.Correspondence, error)
	Get(ctx context.Context, recordID id.ID) (*correspondence.Correspondence, error)
	// GetByCode finds a record by its business code, ignoring case and
	// surrounding space. A malformed code is an INVALID_CODE error.
	GetByCode(ctx context.Context, code string) (*correspondence.Correspondence, error)
}

// MemoryRepository keeps records in process memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []*correspondence.Correspondence
}

// NewMemoryRepository creates a repository holding records.
func NewMemoryRepository(records ...*correspondence.Correspondence) *MemoryRepository {
	r := &MemoryRepository{}
	r.Add(records...)
	return r
}

// Add stores records.
func (r *MemoryRepository) Add(records ...*correspondence.Correspondence) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, records...)
}

// List implements Repository.
func (r *MemoryRepository) List(ctx context.Context, filter Filter) ([]*correspondence.Correspondence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*correspondence.Correspondence, 0, len(r.records))
	for _, c := range r.records {
		if filter.Matches(c) {
			out = append(out, c)
		}
	}
	SortNewestFirst(out)
	return out, nil
}

// Get implements Repository.
func (r *MemoryRepository) Get(ctx context.Context, recordID id.ID) (*correspondence.Correspondence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.records {
		if c.ID == recordID {
			return c, nil
		}
	}
	return nil, apperror.NewNotFound("correspondence", recordID.String())
}

// GetByCode implements Repository.
func (r *MemoryRepository) GetByCode(ctx context.Context, code string) (*correspondence.Correspondence, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, err := numerator.ParseCode(code, time.UTC); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.records {
		if strings.EqualFold(c.Code, code) {
			return c, nil
		}
	}
	return nil, apperror.NewNotFound("correspondence", code)
}

// SortNewestFirst orders records by CreatedAt descending. Ties fall back to the
// ID, which sorts by creation time as well.
func SortNewestFirst(records []*correspondence.Correspondence) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() > b.ID.String()
	})
}

var _ Repository = (*MemoryRepository)(nil)
