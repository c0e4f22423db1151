package runtime

import (
	"fmt"
	"strings"

	"relay-lab/errors"
)

// BroadcastScope decides which participants a broadcast reaches.
type BroadcastScope int

const (
	// ScopeKnownReceivers reaches participants that already have inbox history.
	ScopeKnownReceivers BroadcastScope = iota
	// ScopeRegistered also reaches participants that only registered handlers.
	ScopeRegistered
)

func (s BroadcastScope) String() string {
	switch s {
	case ScopeKnownReceivers:
		return "known-receivers"
	case ScopeRegistered:
		return "registered"
	default:
		return fmt.Sprintf("BroadcastScope(%d)", int(s))
	}
}

// ParseBroadcastScope reads a scope name. An empty name is the default scope.
func ParseBroadcastScope(name string) (BroadcastScope, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "known-receivers":
		return ScopeKnownReceivers, nil
	case "registered":
		return ScopeRegistered, nil
	default:
		return 0, fmt.Errorf("%w: %q", errors.ErrUnknownBroadcastScope, name)
	}
}
