// Package reports provides the correspondence journal and its summaries.
package reports

import (
	"time"

	"archivx/internal/domain/correspondence"
)

// --- Correspondence Journal ---

// Filter selects records for a journal.
type Filter struct {
	// Type restricts the flow (empty means both)
	Type correspondence.Type

	// Period on the document date, both bounds inclusive. Zero means open.
	From time.Time
	To   time.Time

	// Pagination
	Limit  int
	Offset int
}

// Matches reports whether c passes the filter.
func (f Filter) Matches(c *correspondence.Correspondence) bool {
	if f.Type != "" && c.Type != f.Type {
		return false
	}
	if !f.From.IsZero() && c.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && c.Date.After(f.To) {
		return false
	}
	return true
}

// Stats counts records by category.
type Stats struct {
	Total       int                                  `json:"total"`
	Incoming    int                                  `json:"incoming"`
	Outgoing    int                                  `json:"outgoing"`
	ByStatus    map[correspondence.Status]int        `json:"byStatus"`
	ByPriority  map[correspondence.Priority]int      `json:"byPriority"`
	BySecurity  map[correspondence.SecurityLevel]int `json:"bySecurity"`
	Attachments int                                  `json:"attachments"`
}

// Journal is one page of filtered records plus the summary of the whole selection.
type Journal struct {
	Items      []*correspondence.Correspondence `json:"items"`
	TotalItems int                              `json:"totalItems"`
	Summary    Stats                            `json:"summary"`
}
