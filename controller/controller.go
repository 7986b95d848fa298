// Package controller owns the client side of the job lifecycle: the
// visible job set, the optimistic exit window, and reconciliation
// against the remote source of truth. One Controller instance backs one
// view; presentation subscribes to its snapshots instead of holding
// ambient state of its own.
package controller

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/missionhud/missionhud/client"
)

// RemoteAPI is the slice of the SDK the controller needs.
// *client.Client satisfies it.
type RemoteAPI interface {
	ListJobs(ctx context.Context, f client.JobFilter) ([]client.Job, error)
	UpdateJobStatus(ctx context.Context, id string, status client.JobStatus) (*client.Job, error)
	TriggerApply(ctx context.Context, id string) error
	DeleteJob(ctx context.Context, id string) error
	GetProfile(ctx context.Context) (*client.Profile, error)
	GetGamification(ctx context.Context) (*client.Gamification, error)
}

// Snapshot is the controller's published view state. Slices and maps
// are copies; subscribers may hold them across updates.
type Snapshot struct {
	Jobs         []client.Job
	Exiting      map[string]bool
	DetailID     string
	Profile      *client.Profile
	Gamification *client.Gamification
}

// Controller coordinates lifecycle commands for one view. Methods are
// safe for concurrent use; each job id admits at most one in-flight
// transition, later calls superseding earlier pending ones.
type Controller struct {
	api   RemoteAPI
	cfg   Config
	clock Clock

	mu         sync.Mutex
	jobs       []client.Job
	filter     client.JobFilter
	exiting    map[string]*Transition
	detailID   string
	profile    *client.Profile
	gam        *client.Gamification
	appliedSeq uint64
	subs       map[uint64]func(Snapshot)
	subSeq     uint64
	closed     bool

	fetchSeq   uint64 // atomic; issue-order ticket for reconciliations
	closedOnce uint32 // ensures Close is idempotent
}

// ControllerOption mutates the Controller during New().
type ControllerOption func(*Controller)

// WithClock injects a Clock; tests use it to drive animation windows by
// hand.
func WithClock(clk Clock) ControllerOption {
	return func(c *Controller) { c.clock = clk }
}

// New constructs a Controller around the given remote collaborator.
func New(api RemoteAPI, cfg Config, opts ...ControllerOption) *Controller {
	c := &Controller{
		api:     api,
		cfg:     cfg,
		clock:   realClock{},
		exiting: make(map[string]*Transition),
		subs:    make(map[uint64]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn to run after every published state change and
// returns an unsubscribe function.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	c.subSeq++
	id := c.subSeq
	c.subs[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Snapshot returns a copy of the current view state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		Jobs:         make([]client.Job, len(c.jobs)),
		Exiting:      make(map[string]bool, len(c.exiting)),
		DetailID:     c.detailID,
		Profile:      c.profile,
		Gamification: c.gam,
	}
	copy(s.Jobs, c.jobs)
	for id := range c.exiting {
		s.Exiting[id] = true
	}
	return s
}

// publish pushes the current snapshot to all subscribers. Callbacks run
// outside the lock.
func (c *Controller) publish() {
	c.mu.Lock()
	snap := c.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

// SetFilter stores f and reconciles against it. The filter reaches the
// service verbatim; the controller never filters locally.
func (c *Controller) SetFilter(ctx context.Context, f client.JobFilter) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.filter = f
	c.mu.Unlock()
	return c.reconcile(ctx)
}

// OpenDetail marks the job shown in the detail view.
func (c *Controller) OpenDetail(id string) {
	c.mu.Lock()
	c.detailID = id
	c.mu.Unlock()
	c.publish()
}

// CloseDetail clears the detail view.
func (c *Controller) CloseDetail() {
	c.mu.Lock()
	c.detailID = ""
	c.mu.Unlock()
	c.publish()
}

// Refresh pulls profile, gamification and the job list. Partial
// failures are joined so the caller sees every collaborator that is
// down.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.mu.Unlock()

	var errs []error
	if p, err := c.api.GetProfile(ctx); err != nil {
		errs = append(errs, err)
	} else {
		c.mu.Lock()
		c.profile = p
		c.mu.Unlock()
	}
	if g, err := c.api.GetGamification(ctx); err != nil {
		errs = append(errs, err)
	} else {
		c.mu.Lock()
		c.gam = g
		c.mu.Unlock()
	}
	if err := c.reconcile(ctx); err != nil {
		errs = append(errs, err)
	}
	c.publish()
	return errors.Join(errs...)
}

// reconcile replaces the visible set with a fresh authoritative fetch.
// Fetches are numbered at issue time; a result lands only if no
// later-issued result landed first, so an interleaved slow response can
// never regress the view to stale state.
func (c *Controller) reconcile(ctx context.Context) error {
	seq := atomic.AddUint64(&c.fetchSeq, 1)

	c.mu.Lock()
	f := c.filter
	c.mu.Unlock()
	if f.PerPage == 0 {
		f.PerPage = c.cfg.PageSize
	}

	jobs, err := c.api.ListJobs(ctx, f)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if seq <= c.appliedSeq {
		applied := c.appliedSeq
		c.mu.Unlock()
		staleFetchesDroppedTotal.Inc()
		log.Debug().Uint64("seq", seq).Uint64("applied", applied).Msg("dropping stale reconciliation result")
		return nil
	}
	c.appliedSeq = seq
	c.jobs = jobs
	c.mu.Unlock()

	reconciliationsTotal.Inc()
	c.publish()
	return nil
}

// Close tears the controller down: pending animation windows are
// stopped so no command fires against a stale context. Safe to call
// multiple times.
func (c *Controller) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.mu.Lock()
	c.closed = true
	for id, t := range c.exiting {
		if t.timer != nil && t.timer.Stop() {
			windowsCancelledTotal.Inc()
			t.finish(ErrClosed)
		}
		delete(c.exiting, id)
	}
	c.mu.Unlock()
	return nil
}
