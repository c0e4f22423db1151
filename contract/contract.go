//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"encoding/json"

	"relay-lab/domain"
)

// Handler receives decoded messages for one participant.
// A returned error aborts the dispatch and reaches the caller of the router.
type Handler interface {
	Handle(msg domain.Message) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(msg domain.Message) error

func (f HandlerFunc) Handle(msg domain.Message) error { return f(msg) }

// Codec turns raw payloads into messages and back.
// Parse only checks syntax; Decode applies the schema and the semantic rules.
type Codec interface {
	Parse(raw []byte) (json.RawMessage, error)
	Decode(doc json.RawMessage) (domain.Message, error)
	Encode(msg domain.Message) ([]byte, error)
}
