// Package projection builds local timelines from delivered messages.
// A Timeline is a handler: register it on a router to observe what a
// participant decoded, in delivery order.
package projection

import (
	"sync"

	"github.com/samber/lo"

	"relay-lab/domain"
)

// Timeline holds a simple local timeline
type Timeline struct {
	Owner    domain.ParticipantID
	mu       sync.Mutex
	messages []domain.Message
}

func NewTimeline(owner domain.ParticipantID) *Timeline {
	return &Timeline{
		Owner:    owner,
		messages: nil,
	}
}

func (t *Timeline) Handle(msg domain.Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, msg)
	return nil
}

func (t *Timeline) Messages() []domain.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	res := make([]domain.Message, len(t.messages))
	copy(res, t.messages)
	return res
}

func (t *Timeline) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}

// CountByType groups the timeline by message type.
func (t *Timeline) CountByType() map[domain.MessageType]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return lo.CountValuesBy(t.messages, func(msg domain.Message) domain.MessageType {
		return msg.MessageType()
	})
}
