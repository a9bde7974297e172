package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	appctx "archivx/internal/core/context"
	"archivx/internal/core/id"
	"archivx/pkg/logger"
)

var tracer = otel.Tracer("archivx/audit")

// DefaultCompressThreshold is the payload size above which Changes are compressed.
const DefaultCompressThreshold = 10 * 1024

// Sink stores finished audit entries.
type Sink interface {
	Write(ctx context.Context, entry Entry) error
}

// IDGenerator mints entry identifiers. *id.Generator satisfies it.
type IDGenerator interface {
	New() (id.ID, error)
}

// Recorder fills in audit entries and hands them to a Sink.
type Recorder struct {
	sink              Sink
	ids               IDGenerator
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
	now               func() time.Time
}

// NewRecorder creates a recorder. A threshold <= 0 uses DefaultCompressThreshold.
func NewRecorder(sink Sink, ids IDGenerator, compressThreshold int) (*Recorder, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	if compressThreshold <= 0 {
		compressThreshold = DefaultCompressThreshold
	}
	if ids == nil {
		ids = id.NewGenerator()
	}

	return &Recorder{
		sink:              sink,
		ids:               ids,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: compressThreshold,
		now:               time.Now,
	}, nil
}

// Record completes the entry and writes it to the sink.
func (r *Recorder) Record(ctx context.Context, entry Entry) error {
	ctx, span := tracer.Start(ctx, "audit.Record", trace.WithAttributes(
		attribute.String("audit.action", string(entry.Action)),
	))
	defer span.End()

	if actor := appctx.GetActor(ctx); actor != nil {
		if entry.UserID == "" {
			entry.UserID = actor.UserID
		}
		if entry.CompanyID == "" {
			entry.CompanyID = actor.CompanyID
		}
	}

	if id.IsNil(entry.ID) {
		v, err := r.ids.New()
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("audit entry id: %w", err)
		}
		entry.ID = v
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now().UTC()
	}

	entry.CompressionAlgo = CompressionNone
	if len(entry.Changes) > r.compressThreshold {
		entry.ChangesCompressed = r.encoder.EncodeAll(entry.Changes, nil)
		entry.Changes = nil
		entry.CompressionAlgo = CompressionZstd
	}
	span.SetAttributes(attribute.String("audit.compression", string(entry.CompressionAlgo)))

	if err := r.sink.Write(ctx, entry); err != nil {
		span.RecordError(err)
		return fmt.Errorf("write audit entry: %w", err)
	}
	return nil
}

// RecordChange marshals changes and records them for the given entity.
func (r *Recorder) RecordChange(ctx context.Context, action Action, entityType string, entityID id.ID, changes any) error {
	payload, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}

	return r.Record(ctx, Entry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Changes:    payload,
	})
}

// Decode returns the uncompressed change payload of an entry.
func (r *Recorder) Decode(entry Entry) (json.RawMessage, error) {
	if entry.CompressionAlgo != CompressionZstd {
		return entry.Changes, nil
	}
	out, err := r.decoder.DecodeAll(entry.ChangesCompressed, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress changes: %w", err)
	}
	return out, nil
}

// Close releases the decoder resources.
func (r *Recorder) Close() {
	r.decoder.Close()
}

// MemorySink keeps entries in memory.
type MemorySink struct {
	mu      sync.Mutex
	entries []Entry
}

// Write implements Sink.
func (s *MemorySink) Write(ctx context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// Entries returns a copy of the recorded entries.
func (s *MemorySink) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

// LogSink writes entries to the structured log.
type LogSink struct {
	Log *logger.Logger
}

// Write implements Sink.
func (s LogSink) Write(ctx context.Context, entry Entry) error {
	log := s.Log
	if log == nil {
		log = logger.FromContext(ctx)
	} else {
		log = log.WithContext(ctx)
	}

	log.Infow("audit",
		"audit_id", entry.ID.String(),
		"action", string(entry.Action),
		"entity_type", entry.EntityType,
		"entity_id", entry.EntityID.String(),
		"compression", string(entry.CompressionAlgo),
		"changes_bytes", len(entry.Changes)+len(entry.ChangesCompressed),
	)
	return nil
}
