// Package runtime routes raw payloads between simulated participants.
// It owns inboxes, sent records and handler registrations; decoding is
// delegated to a contract.Codec.
package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"relay-lab/codec"
	"relay-lab/contract"
	"relay-lab/domain"
	"relay-lab/errors"
	"relay-lab/observability"
)

// Router is an in-process stand-in for a network transport.
//
// Inbound errors (bad JSON, schema or format violations) are reported to the
// monitor and the payload is dropped. Handler errors are returned to the caller
// and stop the dispatch in progress.
//
// Handlers run synchronously on the caller's goroutine. No lock is held while a
// handler runs, so a handler may call back into the same Router; the nested
// call completes before the outer dispatch moves on.
type Router struct {
	log       *slog.Logger
	codec     contract.Codec
	monitor   *observability.Monitor
	scope     BroadcastScope
	handlers  *Registry
	inboxes   *History
	sent      *History
	readiness *Readiness
}

// NewRouter builds a Router. A nil logger falls back to slog.Default, a nil
// codec to the JSON catalog codec and a nil monitor to a fresh one.
func NewRouter(log *slog.Logger, msgCodec contract.Codec, monitor *observability.Monitor, scope BroadcastScope) *Router {
	if log == nil {
		log = slog.Default()
	}
	if msgCodec == nil {
		msgCodec = codec.NewCodec()
	}
	if monitor == nil {
		monitor = observability.NewMonitor(log, observability.DefaultRecentFailures)
	}
	return &Router{
		log:       log,
		codec:     msgCodec,
		monitor:   monitor,
		scope:     scope,
		handlers:  NewRegistry(),
		inboxes:   NewHistory(),
		sent:      NewHistory(),
		readiness: NewReadiness(),
	}
}

// RegisterHandler appends handler to the participant's handlers.
// domain.Broadcast registers a handler that fires for every participant
// reached by a broadcast.
func (r *Router) RegisterHandler(handler contract.Handler, to domain.ParticipantID) {
	r.handlers.Subscribe(to, handler)
	r.log.Debug("Handler registered", "participant", to.String())
}

func (r *Router) RegisterFunc(fn func(msg domain.Message) error, to domain.ParticipantID) {
	r.RegisterHandler(contract.HandlerFunc(fn), to)
}

// Deliver decodes raw and dispatches the message to the target's handlers.
// For a broadcast, every fan-out target first records raw in its inbox, then
// runs its own handlers followed by the broadcast handlers.
func (r *Router) Deliver(raw string, to domain.ParticipantID) error {
	dispatchID := uuid.NewString()
	msg, ok := r.ingest(dispatchID, raw, to)
	if !ok {
		return nil
	}
	if to.IsBroadcast() {
		return r.fanout(dispatchID, raw, msg)
	}
	return r.dispatch(msg, to, r.handlers.HandlersFor(to))
}

// Send records the payload as sent to the target, then delivers it.
// message is raw text (string or []byte) or a domain.Message, which is encoded
// first. Anything else fails with errors.ErrInputType and records nothing.
func (r *Router) Send(message any, to domain.ParticipantID) error {
	raw, err := r.serialize(message)
	if err != nil {
		return err
	}
	r.sent.Append(to, raw)
	r.monitor.IncrSent()
	return r.Deliver(raw, to)
}

// SimulateReceive fakes a payload arriving from outside: it is stored in the
// target's inbox whatever its content, then delivered.
func (r *Router) SimulateReceive(raw string, to domain.ParticipantID) error {
	r.inboxes.Append(to, raw)
	r.monitor.IncrReceived()
	return r.Deliver(raw, to)
}

func (r *Router) MarkReady() {
	r.readiness.MarkReady()
}

func (r *Router) IsReady() bool {
	return r.readiness.IsReady()
}

// WaitReady blocks until MarkReady is called or ctx is done.
// Dispatch never waits for readiness; the flag is for long-running simulations.
func (r *Router) WaitReady(ctx context.Context) error {
	return r.readiness.Wait(ctx)
}

// Inbox returns the raw payloads received by the participant, oldest first.
func (r *Router) Inbox(participantID domain.ParticipantID) []string {
	return r.inboxes.Entries(participantID)
}

// Sent returns the raw payloads sent to the participant, oldest first.
func (r *Router) Sent(participantID domain.ParticipantID) []string {
	return r.sent.Entries(participantID)
}

// Participants lists the known receivers in the order they were first seen.
func (r *Router) Participants() []domain.ParticipantID {
	return lo.Without(r.inboxes.Participants(), domain.Broadcast)
}

func (r *Router) HandlerCount(participantID domain.ParticipantID) int {
	return len(r.handlers.HandlersFor(participantID))
}

func (r *Router) Scope() BroadcastScope {
	return r.scope
}

func (r *Router) Stats() observability.Stats {
	return r.monitor.Stats()
}

func (r *Router) ingest(dispatchID, raw string, to domain.ParticipantID) (domain.Message, bool) {
	doc, err := r.codec.Parse([]byte(raw))
	if err != nil {
		r.report(dispatchID, to, raw, errors.StageParse, err)
		return nil, false
	}
	msg, err := r.codec.Decode(doc)
	if err == nil && msg == nil {
		err = fmt.Errorf("%w: decoder returned no message", errors.ErrSchemaValidation)
	}
	if err != nil {
		r.report(dispatchID, to, raw, errors.StageSchema, err)
		return nil, false
	}
	return msg, true
}

// report hands the failure to the monitor. Errors that are not IngestError,
// as a custom codec may return, are attributed to the given stage.
func (r *Router) report(dispatchID string, to domain.ParticipantID, raw string, stage errors.IngestStage, err error) {
	var ingestErr *errors.IngestError
	if !stderrors.As(err, &ingestErr) {
		ingestErr = &errors.IngestError{Stage: stage, Err: err}
	}
	r.monitor.ReportIngest(dispatchID, to, raw, ingestErr)
}

func (r *Router) fanout(dispatchID, raw string, msg domain.Message) error {
	targets := r.broadcastTargets()
	if len(targets) == 0 {
		r.log.Debug("Broadcast reached no participant", "dispatch_id", dispatchID)
		return nil
	}
	for _, participantID := range targets {
		r.inboxes.Append(participantID, raw)
		handlers := append(r.handlers.HandlersFor(participantID), r.handlers.HandlersFor(domain.Broadcast)...)
		if err := r.dispatch(msg, participantID, handlers); err != nil {
			return err
		}
	}
	return nil
}

// broadcastTargets snapshots the fan-out list before any handler runs.
func (r *Router) broadcastTargets() []domain.ParticipantID {
	targets := lo.Without(r.inboxes.Participants(), domain.Broadcast)
	if r.scope == ScopeRegistered {
		registered := lo.Without(r.handlers.Participants(), domain.Broadcast)
		targets = lo.Uniq(append(targets, registered...))
	}
	return targets
}

func (r *Router) dispatch(msg domain.Message, to domain.ParticipantID, handlers []contract.Handler) error {
	for i, handler := range handlers {
		if err := handler.Handle(msg); err != nil {
			r.monitor.IncrHandlerFailures()
			return &errors.HandlerError{Participant: string(to), Index: i, Err: err}
		}
		r.monitor.IncrDelivered()
	}
	return nil
}

func (r *Router) serialize(message any) (string, error) {
	switch m := message.(type) {
	case string:
		return m, nil
	case []byte:
		return string(m), nil
	case domain.Message:
		raw, err := r.codec.Encode(m)
		if err != nil {
			return "", fmt.Errorf("serialize %T: %w", m, err)
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("%w: got %T", errors.ErrInputType, message)
	}
}
