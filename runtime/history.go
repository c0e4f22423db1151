package runtime

import (
	"sync"

	"relay-lab/domain"
)

// History is an append-only log of raw payloads per participant.
// Entries are created lazily on first append and participants are
// remembered in that first-append order.
type History struct {
	mu      sync.RWMutex
	order   []domain.ParticipantID
	entries map[domain.ParticipantID][]string
}

func NewHistory() *History {
	return &History{
		entries: make(map[domain.ParticipantID][]string),
	}
}

func (h *History) Append(participantID domain.ParticipantID, raw string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.entries[participantID]; !ok {
		h.order = append(h.order, participantID)
	}
	h.entries[participantID] = append(h.entries[participantID], raw)
}

// Entries returns a copy of the participant's payloads, oldest first.
func (h *History) Entries(participantID domain.ParticipantID) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	entries, ok := h.entries[participantID]
	if !ok {
		return nil
	}
	res := make([]string, len(entries))
	copy(res, entries)
	return res
}

func (h *History) Has(participantID domain.ParticipantID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.entries[participantID]
	return ok
}

func (h *History) Participants() []domain.ParticipantID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	res := make([]domain.ParticipantID, len(h.order))
	copy(res, h.order)
	return res
}
