// Package pipeline orchestrates one invocation: replay previously
// failed tasks from the retry queue, then parse, resolve, and submit
// the live input.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"godspeed/internal/notify"
	"godspeed/internal/queue"
	"godspeed/internal/refcache"
	"godspeed/internal/service"
	"godspeed/internal/shorthand"
)

// ErrMultipleLists rejects inputs carrying more than one list marker.
// Such inputs are never queued: they would fail identically on every
// replay.
var ErrMultipleLists = errors.New("multiple lists specified")

// Pipeline wires the parser, the reference resolvers, the retry
// queue, and the remote service together.
type Pipeline struct {
	service  service.Service
	notifier notify.Notifier
	lists    *refcache.Resolver
	labels   *refcache.Resolver
	queue    *queue.Queue
}

// New creates a pipeline over the given collaborators.
func New(svc service.Service, n notify.Notifier, lists, labels *refcache.Resolver, q *queue.Queue) *Pipeline {
	return &Pipeline{
		service:  svc,
		notifier: n,
		lists:    lists,
		labels:   labels,
		queue:    q,
	}
}

// Run replays the queue, then processes the live input if any. The
// returned error is nil, ErrMultipleLists, or a submission failure —
// in which case the raw input has already been queued for the next
// invocation and the user notified.
func (p *Pipeline) Run(ctx context.Context, input string) error {
	p.Replay(ctx)

	if input == "" {
		return nil
	}

	err := p.Process(ctx, input)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrMultipleLists) {
		p.notifier.Notify("Error: Multiple lists specified")
		return err
	}

	if qerr := p.queue.Enqueue(input); qerr != nil {
		return fmt.Errorf("%w (queueing for retry also failed: %v)", err, qerr)
	}
	p.notifier.Notify("Failed to send task")
	return err
}

// Replay retries every queued task, removing the ones that submit
// successfully. Failed entries stay in place silently — no stderr, no
// notification, no re-enqueue. The snapshot is taken once, so entries
// queued mid-replay are not revisited in the same pass.
func (p *Pipeline) Replay(ctx context.Context) {
	for _, task := range p.queue.Drain() {
		if err := p.Process(ctx, task); err == nil {
			_ = p.queue.Remove(task)
		}
	}
}

// Process runs the parse-resolve-submit pipeline for one raw input.
// Unresolved references are omitted from the submitted task, never an
// error; resolver refresh failures and submission failures propagate.
func (p *Pipeline) Process(ctx context.Context, raw string) error {
	draft := shorthand.Parse(raw)

	task := service.TaskRequest{
		Title:           draft.Title,
		DurationMinutes: draft.DurationMinutes,
		Notes:           draft.Notes,
	}

	if draft.ListName != "" {
		id, ok, err := p.lists.Resolve(ctx, draft.ListName)
		if err != nil {
			return fmt.Errorf("resolve list %q: %w", draft.ListName, err)
		}
		if ok {
			task.ListID = id
		}
	}

	if len(draft.LabelNames) > 0 {
		ids, err := p.labels.ResolveAll(ctx, draft.LabelNames)
		if err != nil {
			return fmt.Errorf("resolve labels: %w", err)
		}
		task.LabelIDs = ids
	}

	// Raw marker count, not the captured value: two "@" tokens always
	// reject even though parsing already picked the last one.
	if shorthand.CountListMarkers(raw) > 1 {
		return ErrMultipleLists
	}

	return p.service.SubmitTask(ctx, task)
}
