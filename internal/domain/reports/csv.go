package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"archivx/internal/domain/correspondence"
)

// utf8BOM lets spreadsheet tools detect UTF-8 so Arabic columns open correctly.
const utf8BOM = "\ufeff"

var csvHeader = []string{
	"id", "barcodeId", "type", "title", "sender", "recipient",
	"referenceNumber", "docDate", "status", "priority", "security",
	"category", "attachmentCount", "createdAt", "createdBy",
}

// WriteCSV writes records as CSV in logical (unshaped) order, prefixed with a
// UTF-8 byte order mark.
func WriteCSV(w io.Writer, records []*correspondence.Correspondence) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range records {
		if err := cw.Write(csvRow(c)); err != nil {
			return fmt.Errorf("write %s: %w", c.Code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(c *correspondence.Correspondence) []string {
	return []string{
		c.ID.String(),
		c.Code,
		string(c.Type),
		c.Title,
		c.Sender,
		c.Recipient,
		c.ReferenceNumber,
		formatDate(c.Date, "2006-01-02"),
		string(c.Status),
		string(c.Priority),
		string(c.Security),
		c.Category,
		strconv.Itoa(c.AttachmentCount),
		formatDate(c.CreatedAt, time.RFC3339),
		strings.TrimSpace(c.CreatedBy),
	}
}

func formatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
