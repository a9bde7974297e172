package audit

import (
	"encoding/json"
	"time"

	"archivx/internal/core/id"
)

// Action represents the type of audited operation.
type Action string

const (
	ActionCreateCorrespondence Action = "CREATE_CORRESPONDENCE"
	ActionPrintReceipt         Action = "PRINT_RECEIPT"
	ActionExportReport         Action = "EXPORT_REPORT"
)

// CompressionAlgo specifies the compression algorithm used for Changes.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// Entry is a single audit log entry.
type Entry struct {
	ID                id.ID           `json:"id"`
	Action            Action          `json:"action"`
	EntityType        string          `json:"entityType"`
	EntityID          id.ID           `json:"entityId"`
	UserID            string          `json:"userId,omitempty"`
	CompanyID         string          `json:"companyId,omitempty"`
	Details           string          `json:"details,omitempty"`
	Changes           json.RawMessage `json:"changes,omitempty"`
	ChangesCompressed []byte          `json:"changesCompressed,omitempty"`
	CompressionAlgo   CompressionAlgo `json:"compressionAlgo"`
	CreatedAt         time.Time       `json:"createdAt"`
}
