package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"relay-lab/codec"
	"relay-lab/domain"
	"relay-lab/observability"
	"relay-lab/runtime"
)

func feePayload(t *testing.T, nonce uint64) string {
	t.Helper()
	raw, err := codec.NewCodec().Encode(domain.FeeInfo{
		TokenNetworkAddress: "0x00000000000000000000000000000000000000d4",
		ChannelIdentifier:   7,
		ChainID:             1,
		Nonce:               nonce,
		PercentageFee:       "0.01",
		Signature:           "0x" + strings.Repeat("ab", 65),
	})
	require.NoError(t, err)
	return string(raw)
}

func newReplayRouter() *runtime.Router {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return runtime.NewRouter(log, codec.NewCodec(), observability.NewMonitor(log, observability.DefaultRecentFailures), runtime.ScopeKnownReceivers)
}

func TestReplayer_Run(t *testing.T) {
	req := require.New(t)
	router := newReplayRouter()
	replayer := NewReplayer(logs.GetLoggerFromLevel(slog.LevelDebug), router)
	script := fmt.Sprintf(`receive alice {"bad json"
receive bob %s
deliver * %s
send alice %s
`, feePayload(t, 1), feePayload(t, 2), feePayload(t, 3))
	steps, err := ParseScript(strings.NewReader(script))
	req.NoError(err)

	// When the script is replayed
	req.NoError(replayer.Run(context.Background(), steps))

	// Then every named participant has a timeline in first-seen order
	timelines := replayer.Timelines()
	req.Len(timelines, 2)
	req.Equal(domain.ParticipantID("alice"), timelines[0].Owner)
	req.Equal(domain.ParticipantID("bob"), timelines[1].Owner)

	// And alice decoded the broadcast and the send, bob the receive and the broadcast
	req.Equal(2, timelines[0].Len())
	req.Equal(2, timelines[1].Len())
	req.Len(router.Inbox("alice"), 2)
	req.Len(router.Sent("alice"), 1)
	req.True(router.IsReady())
	req.Equal(uint64(1), router.Stats().ParseErrors)
}

func TestReplayer_Run_Cancelled(t *testing.T) {
	req := require.New(t)
	router := newReplayRouter()
	replayer := NewReplayer(logs.GetLoggerFromLevel(slog.LevelDebug), router)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := replayer.Run(ctx, []Step{{Line: 1, Op: OpReceive, To: "alice", Payload: "{}"}})

	req.ErrorIs(err, context.Canceled)
	req.Nil(router.Inbox("alice"))
}

func TestReplayer_Run_HandlerErrorStops(t *testing.T) {
	req := require.New(t)
	router := newReplayRouter()
	boom := fmt.Errorf("listener down")
	router.RegisterFunc(func(domain.Message) error { return boom }, "alice")
	replayer := NewReplayer(logs.GetLoggerFromLevel(slog.LevelDebug), router)
	steps := []Step{
		{Line: 1, Op: OpDeliver, To: "alice", Payload: feePayload(t, 1)},
		{Line: 2, Op: OpReceive, To: "bob", Payload: feePayload(t, 2)},
	}

	err := replayer.Run(context.Background(), steps)

	req.ErrorIs(err, boom)
	req.Contains(err.Error(), "line 1")
	req.Nil(router.Inbox("bob"))
}

func TestPrintSummary(t *testing.T) {
	req := require.New(t)
	router := newReplayRouter()
	replayer := NewReplayer(logs.GetLoggerFromLevel(slog.LevelDebug), router)
	steps := []Step{
		{Line: 1, Op: OpReceive, To: "alice", Payload: feePayload(t, 1)},
		{Line: 2, Op: OpSend, To: domain.Broadcast, Payload: `{"bad json"`},
	}
	req.NoError(replayer.Run(context.Background(), steps))

	var out bytes.Buffer
	PrintSummary(&out, router, replayer.Timelines(), DisplayConfig{Colours: false, ShowFailures: true})

	summary := out.String()
	req.Contains(summary, "====== Participants ======")
	req.Contains(summary, "FeeInfo:1")
	req.Contains(summary, "====== Counters ======")
	req.Contains(summary, "parse errors")
	req.Contains(summary, "====== Recent failures ======")
	req.Contains(summary, "payload is not valid JSON")
}

func TestPrintSummary_NoFailures(t *testing.T) {
	var out bytes.Buffer
	PrintSummary(&out, newReplayRouter(), nil, DisplayConfig{Colours: true, ShowFailures: true})
	require.NotContains(t, out.String(), "Recent failures")
	require.Contains(t, out.String(), "Counters")
}
