package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"relay-lab/domain"
	"relay-lab/projection"
	"relay-lab/runtime"
)

// Replayer feeds script steps through a router. Every participant named in
// the script observes its deliveries through a projection.Timeline.
type Replayer struct {
	log       *slog.Logger
	router    *runtime.Router
	timelines []*projection.Timeline
}

func NewReplayer(log *slog.Logger, router *runtime.Router) *Replayer {
	return &Replayer{log: log, router: router}
}

// Run registers the timelines, marks the router ready and applies the steps
// in order. It stops at the first handler error or when ctx is done.
func (r *Replayer) Run(ctx context.Context, steps []Step) error {
	named := lo.Uniq(lo.FilterMap(steps, func(step Step, _ int) (domain.ParticipantID, bool) {
		return step.To, !step.To.IsBroadcast()
	}))
	for _, participantID := range named {
		timeline := projection.NewTimeline(participantID)
		r.router.RegisterHandler(timeline, participantID)
		r.timelines = append(r.timelines, timeline)
	}
	r.router.MarkReady()
	r.log.Info("Replay started", "steps", len(steps), "participants", len(named), "scope", r.router.Scope().String())

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("replay interrupted before line %d: %w", step.Line, err)
		}
		if err := r.apply(step); err != nil {
			return fmt.Errorf("line %d: %w", step.Line, err)
		}
	}
	r.log.Info("Replay finished", "steps", len(steps))
	return nil
}

func (r *Replayer) Timelines() []*projection.Timeline {
	return r.timelines
}

func (r *Replayer) apply(step Step) error {
	r.log.Debug("Applying step", "line", step.Line, "op", string(step.Op), "to", step.To.String())
	switch step.Op {
	case OpReceive:
		return r.router.SimulateReceive(step.Payload, step.To)
	case OpDeliver:
		return r.router.Deliver(step.Payload, step.To)
	case OpSend:
		return r.router.Send(step.Payload, step.To)
	default:
		return fmt.Errorf("unsupported operation %q", step.Op)
	}
}
