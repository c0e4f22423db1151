// Package domain contains core concepts of the relay.
// This file defines the Message contract shared by every wire type.
// Messages are immutable values, only built by a successful decode.
package domain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"relay-lab/errors"
)

type MessageType string

const (
	BalanceProofType   MessageType = "BalanceProof"
	MonitorRequestType MessageType = "MonitorRequest"
	FeeInfoType        MessageType = "FeeInfo"
	PathsRequestType   MessageType = "PathsRequest"
	PathsReplyType     MessageType = "PathsReply"
)

// TypeField is the JSON discriminator every wire payload carries.
const TypeField = "message_type"

const (
	signatureLength = 65
	hashLength      = 32
)

// Message is a decoded, schema-valid unit exchanged between participants.
type Message interface {
	MessageType() MessageType
}

// Checker is implemented by messages with rules that struct tags cannot express.
// Check errors wrap errors.ErrMessageFormat.
type Checker interface {
	Check() error
}

func checkHexLength(field, value string, length int) error {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X"))
	if err != nil {
		return fmt.Errorf("%w: %s is not hex: %v", errors.ErrMessageFormat, field, err)
	}
	if len(raw) != length {
		return fmt.Errorf("%w: %s must be %d bytes, got %d", errors.ErrMessageFormat, field, length, len(raw))
	}
	return nil
}

func checkSignature(field, value string) error {
	return checkHexLength(field, value, signatureLength)
}
