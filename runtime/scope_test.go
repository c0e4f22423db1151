package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"relay-lab/errors"
)

func TestParseBroadcastScope(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    BroadcastScope
		wantErr error
	}{
		{name: "Empty is default", input: "", want: ScopeKnownReceivers},
		{name: "Known receivers", input: "known-receivers", want: ScopeKnownReceivers},
		{name: "Registered", input: "registered", want: ScopeRegistered},
		{name: "Case and spaces", input: "  Registered ", want: ScopeRegistered},
		{name: "Unknown", input: "everyone", wantErr: errors.ErrUnknownBroadcastScope},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := ParseBroadcastScope(tt.input)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func TestBroadcastScope_String_Round_Trip(t *testing.T) {
	req := require.New(t)
	for _, scope := range []BroadcastScope{ScopeKnownReceivers, ScopeRegistered} {
		parsed, err := ParseBroadcastScope(scope.String())
		req.NoError(err)
		req.Equal(scope, parsed)
	}
	req.Equal("BroadcastScope(7)", BroadcastScope(7).String())
}
