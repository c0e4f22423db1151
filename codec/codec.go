// Package codec is the schema collaborator of the router.
// It parses raw JSON payloads, validates them against the registered message
// types and renders messages back to their canonical wire form.
package codec

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"relay-lab/domain"
	"relay-lab/errors"
)

type decodeFunc func(doc json.RawMessage) (domain.Message, error)

// Codec implements contract.Codec for the JSON wire format.
type Codec struct {
	mu       sync.RWMutex
	validate *validator.Validate
	decoders map[domain.MessageType]decodeFunc
}

// NewCodec returns a codec that knows the whole message catalog.
func NewCodec() *Codec {
	c := &Codec{
		validate: validator.New(),
		decoders: make(map[domain.MessageType]decodeFunc),
	}
	Register[domain.BalanceProof](c)
	Register[domain.MonitorRequest](c)
	Register[domain.FeeInfo](c)
	Register[domain.PathsRequest](c)
	Register[domain.PathsReply](c)
	return c
}

// Register makes T decodable under T's message type, replacing any previous
// registration. T must be a struct value type.
func Register[T domain.Message](c *Codec) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decoders[zero.MessageType()] = func(doc json.RawMessage) (domain.Message, error) {
		var msg T
		if err := json.Unmarshal(doc, &msg); err != nil {
			return nil, schemaError(err)
		}
		if err := c.validate.Struct(msg); err != nil {
			return nil, schemaError(err)
		}
		if checker, ok := any(msg).(domain.Checker); ok {
			if err := checker.Check(); err != nil {
				return nil, &errors.IngestError{Stage: errors.StageFormat, Err: err}
			}
		}
		return msg, nil
	}
}

// Types lists the registered message types.
func (c *Codec) Types() []domain.MessageType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	types := make([]domain.MessageType, 0, len(c.decoders))
	for t := range c.decoders {
		types = append(types, t)
	}
	return types
}

// Parse checks that raw is well-formed JSON.
func (c *Codec) Parse(raw []byte) (json.RawMessage, error) {
	var doc json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &errors.IngestError{
			Stage: errors.StageParse,
			Err:   fmt.Errorf("%w: %w", errors.ErrMalformedJSON, err),
		}
	}
	return doc, nil
}

// Decode resolves the message type from the discriminator and builds the message.
func (c *Codec) Decode(doc json.RawMessage) (domain.Message, error) {
	var envelope struct {
		Type *domain.MessageType `json:"message_type"`
	}
	if err := json.Unmarshal(doc, &envelope); err != nil {
		return nil, schemaError(err)
	}
	if envelope.Type == nil {
		return nil, schemaError(fmt.Errorf("missing %q field", domain.TypeField))
	}

	c.mu.RLock()
	decode, ok := c.decoders[*envelope.Type]
	c.mu.RUnlock()
	if !ok {
		return nil, schemaError(fmt.Errorf("%w %q", errors.ErrUnknownMessageType, *envelope.Type))
	}
	return decode(doc)
}

// Encode renders msg in canonical form: a JSON object with sorted top-level
// keys, the discriminator included.
func (c *Codec) Encode(msg domain.Message) ([]byte, error) {
	if msg == nil {
		return nil, errors.ErrInputType
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	var fields map[string]json.RawMessage
	if err = json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("encode message: %T is not a JSON object", msg)
	}
	typ, err := json.Marshal(msg.MessageType())
	if err != nil {
		return nil, fmt.Errorf("encode message type: %w", err)
	}
	fields[domain.TypeField] = typ
	return json.Marshal(fields)
}

func schemaError(err error) error {
	return &errors.IngestError{
		Stage: errors.StageSchema,
		Err:   fmt.Errorf("%w: %w", errors.ErrSchemaValidation, err),
	}
}
