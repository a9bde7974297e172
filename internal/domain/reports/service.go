package reports

import (
	"context"
	"fmt"

	"archivx/internal/core/apperror"
	"archivx/internal/domain/correspondence"
)

// Service provides journal operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetJournal returns one page of the filtered journal with the summary of
// every matching record.
func (s *Service) GetJournal(ctx context.Context, filter Filter) (*Journal, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		return nil, apperror.NewValidation("from must be before to").
			WithDetail("from", filter.From).
			WithDetail("to", filter.To)
	}
	if filter.Type != "" && filter.Type != correspondence.TypeIncoming && filter.Type != correspondence.TypeOutgoing {
		return nil, apperror.NewValidation("unknown correspondence type").
			WithDetail("type", string(filter.Type))
	}

	// Set default pagination
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list correspondence: %w", err)
	}

	journal := &Journal{
		TotalItems: len(records),
		Summary:    Summarize(records),
		Items:      []*correspondence.Correspondence{},
	}
	if filter.Offset < len(records) {
		end := min(filter.Offset+filter.Limit, len(records))
		journal.Items = records[filter.Offset:end]
	}

	return journal, nil
}

// Summarize counts records per direction, status, priority and security level.
func Summarize(records []*correspondence.Correspondence) Stats {
	stats := Stats{
		ByStatus:   make(map[correspondence.Status]int),
		ByPriority: make(map[correspondence.Priority]int),
		BySecurity: make(map[correspondence.SecurityLevel]int),
	}
	for _, c := range records {
		stats.Total++
		switch c.Type {
		case correspondence.TypeIncoming:
			stats.Incoming++
		case correspondence.TypeOutgoing:
			stats.Outgoing++
		}
		stats.ByStatus[c.Status]++
		stats.ByPriority[c.Priority]++
		stats.BySecurity[c.Security]++
		stats.Attachments += c.AttachmentCount
	}
	return stats
}
