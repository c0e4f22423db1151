package runtime

import (
	"sync"

	"relay-lab/contract"
	"relay-lab/domain"
)

// Registry maps each participant, broadcast included, to its handlers.
// Handlers are kept in registration order and are never removed.
type Registry struct {
	mu       sync.RWMutex
	order    []domain.ParticipantID
	handlers map[domain.ParticipantID][]contract.Handler
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[domain.ParticipantID][]contract.Handler),
	}
}

// Subscribe appends a handler for the participant.
// Registering the same handler twice is allowed and makes it fire twice.
func (r *Registry) Subscribe(participantID domain.ParticipantID, handler contract.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[participantID]; !ok {
		r.order = append(r.order, participantID)
	}
	r.handlers[participantID] = append(r.handlers[participantID], handler)
}

// HandlersFor returns a copy of the participant's handlers.
// Returns nil if nothing was registered for it.
func (r *Registry) HandlersFor(participantID domain.ParticipantID) []contract.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handlers, ok := r.handlers[participantID]
	if !ok {
		return nil
	}
	res := make([]contract.Handler, len(handlers))
	copy(res, handlers)
	return res
}

// Participants lists every key with at least one handler, in first registration order.
func (r *Registry) Participants() []domain.ParticipantID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]domain.ParticipantID, len(r.order))
	copy(res, r.order)
	return res
}
