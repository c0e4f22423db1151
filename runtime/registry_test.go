package runtime

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"relay-lab/contract"
	"relay-lab/domain"
)

type Sink struct {
	name string
}

func (s Sink) Handle(domain.Message) error {
	return nil
}

func TestRegistry_Subscribe_One_Participant(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	participantID := domain.ParticipantID(uuid.NewString())
	sink := Sink{name: "first"}

	// Given nobody registered
	req.Empty(registry.Participants())
	req.Nil(registry.HandlersFor(participantID))

	// When a participant subscribes a handler
	registry.Subscribe(participantID, sink)

	// Then
	req.Equal([]domain.ParticipantID{participantID}, registry.Participants())
	req.Equal([]contract.Handler{sink}, registry.HandlersFor(participantID))
}

func TestRegistry_Subscribe_Keeps_Registration_Order(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	first, second, third := Sink{name: "1"}, Sink{name: "2"}, Sink{name: "3"}

	// When handlers are registered for several keys, broadcast included
	registry.Subscribe("bob", first)
	registry.Subscribe(domain.Broadcast, second)
	registry.Subscribe("alice", third)
	registry.Subscribe("bob", third)

	// Then keys keep their first registration order and handlers their append order
	req.Equal([]domain.ParticipantID{"bob", domain.Broadcast, "alice"}, registry.Participants())
	req.Equal([]contract.Handler{first, third}, registry.HandlersFor("bob"))
	req.Equal([]contract.Handler{second}, registry.HandlersFor(domain.Broadcast))
}

func TestRegistry_Subscribe_Same_Handler_Twice(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sink := Sink{name: "dup"}

	registry.Subscribe("alice", sink)
	registry.Subscribe("alice", sink)

	req.Len(registry.HandlersFor("alice"), 2)
	req.Len(registry.Participants(), 1)
}

func TestRegistry_HandlersFor_Returns_Copy(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.Subscribe("alice", Sink{name: "kept"})

	// When the caller mutates the returned slice
	handlers := registry.HandlersFor("alice")
	handlers[0] = Sink{name: "replaced"}
	_ = append(handlers, Sink{name: "extra"})

	// Then the registry is unchanged
	req.Equal([]contract.Handler{Sink{name: "kept"}}, registry.HandlersFor("alice"))
}
