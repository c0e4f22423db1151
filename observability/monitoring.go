package observability

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"relay-lab/domain"
	"relay-lab/errors"
)

const (
	DefaultRecentFailures = 20
	payloadPreviewLength  = 64
)

// FailureInfo describes one dropped payload.
type FailureInfo struct {
	ID          string    `json:"id"`
	DispatchID  string    `json:"dispatch_id"`
	Stage       string    `json:"stage"`
	Participant string    `json:"participant"`
	Error       string    `json:"error"`
	Payload     string    `json:"payload"`
	Timestamp   time.Time `json:"timestamp"`
}

// Stats is a point-in-time copy of the monitor counters.
type Stats struct {
	Received        uint64        `json:"received"`
	Sent            uint64        `json:"sent"`
	Delivered       uint64        `json:"delivered"`
	ParseErrors     uint64        `json:"parse_errors"`
	SchemaErrors    uint64        `json:"schema_errors"`
	FormatErrors    uint64        `json:"format_errors"`
	HandlerFailures uint64        `json:"handler_failures"`
	RecentFailures  []FailureInfo `json:"recent_failures"`
}

// Dropped is the number of payloads rejected by the ingest pipeline.
func (s Stats) Dropped() uint64 {
	return s.ParseErrors + s.SchemaErrors + s.FormatErrors
}

// Monitor is the observability sink of the router.
// Counters are atomic; the recent failure list keeps the newest entries first.
type Monitor struct {
	log       *slog.Logger
	mu        sync.RWMutex
	recent    []FailureInfo
	maxRecent int

	received        uint64
	sent            uint64
	delivered       uint64
	parseErrors     uint64
	schemaErrors    uint64
	formatErrors    uint64
	handlerFailures uint64
}

func NewMonitor(log *slog.Logger, maxRecent int) *Monitor {
	if log == nil {
		log = slog.Default()
	}
	if maxRecent < 0 {
		maxRecent = 0
	}
	return &Monitor{
		log:       log,
		maxRecent: maxRecent,
		recent:    make([]FailureInfo, 0),
	}
}

func (m *Monitor) IncrReceived() {
	atomic.AddUint64(&m.received, 1)
}

func (m *Monitor) IncrSent() {
	atomic.AddUint64(&m.sent, 1)
}

func (m *Monitor) IncrDelivered() {
	atomic.AddUint64(&m.delivered, 1)
}

func (m *Monitor) IncrHandlerFailures() {
	atomic.AddUint64(&m.handlerFailures, 1)
}

// ReportIngest records a payload that could not become a message.
func (m *Monitor) ReportIngest(dispatchID string, participant domain.ParticipantID, raw string, err *errors.IngestError) {
	switch err.Stage {
	case errors.StageParse:
		atomic.AddUint64(&m.parseErrors, 1)
	case errors.StageFormat:
		atomic.AddUint64(&m.formatErrors, 1)
	default:
		atomic.AddUint64(&m.schemaErrors, 1)
	}

	snippet := preview(raw)
	m.log.Error(fmt.Sprintf("Dropping undeliverable payload: %v", err.Err),
		"stage", string(err.Stage),
		"participant", participant.String(),
		"dispatch_id", dispatchID,
		"payload", snippet,
	)

	if m.maxRecent == 0 {
		return
	}
	info := FailureInfo{
		ID:          uuid.NewString(),
		DispatchID:  dispatchID,
		Stage:       string(err.Stage),
		Participant: participant.String(),
		Error:       err.Err.Error(),
		Payload:     snippet,
		Timestamp:   time.Now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.recent = append([]FailureInfo{info}, m.recent...)
	if len(m.recent) > m.maxRecent {
		m.recent = m.recent[:m.maxRecent]
	}
}

func (m *Monitor) Stats() Stats {
	m.mu.RLock()
	recent := make([]FailureInfo, len(m.recent))
	copy(recent, m.recent)
	m.mu.RUnlock()

	return Stats{
		Received:        atomic.LoadUint64(&m.received),
		Sent:            atomic.LoadUint64(&m.sent),
		Delivered:       atomic.LoadUint64(&m.delivered),
		ParseErrors:     atomic.LoadUint64(&m.parseErrors),
		SchemaErrors:    atomic.LoadUint64(&m.schemaErrors),
		FormatErrors:    atomic.LoadUint64(&m.formatErrors),
		HandlerFailures: atomic.LoadUint64(&m.handlerFailures),
		RecentFailures:  recent,
	}
}

func preview(raw string) string {
	runes := []rune(raw)
	if len(runes) <= payloadPreviewLength {
		return raw
	}
	return string(runes[:payloadPreviewLength]) + "…"
}
