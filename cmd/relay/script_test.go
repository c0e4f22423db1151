package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"relay-lab/domain"
	"relay-lab/errors"
)

func TestParseScript(t *testing.T) {
	req := require.New(t)
	script := `
# alice gets garbage first
receive alice {"bad json"
deliver	*	{"message_type": "FeeInfo"}
SEND bob   {"a": 1,  "b": 2}
receive carol
`

	steps, err := ParseScript(strings.NewReader(script))

	req.NoError(err)
	req.Equal([]Step{
		{Line: 3, Op: OpReceive, To: "alice", Payload: `{"bad json"`},
		{Line: 4, Op: OpDeliver, To: domain.Broadcast, Payload: `{"message_type": "FeeInfo"}`},
		{Line: 5, Op: OpSend, To: "bob", Payload: `{"a": 1,  "b": 2}`},
		{Line: 6, Op: OpReceive, To: "carol", Payload: ""},
	}, steps)
}

func TestParseScript_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		script string
		line   string
	}{
		{name: "Unknown operation", script: "publish alice {}", line: "line 1"},
		{name: "Missing participant", script: "# header\n\nreceive", line: "line 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			steps, err := ParseScript(strings.NewReader(tt.script))
			req.ErrorIs(err, errors.ErrInvalidScript)
			req.Contains(err.Error(), tt.line)
			req.Nil(steps)
		})
	}
}

func TestParseScript_Empty(t *testing.T) {
	steps, err := ParseScript(strings.NewReader("# nothing\n\n"))
	require.NoError(t, err)
	require.Empty(t, steps)
}
