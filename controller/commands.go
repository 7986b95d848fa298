package controller

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/missionhud/missionhud/client"
)

// Lifecycle commands. MarkApplied and Undo run the two-phase optimistic
// protocol: the job id enters the exiting set immediately (a visual
// signal only — the job's status field is untouched), the remote
// command fires after the animation window, and the visible set is then
// reconciled from the source of truth or rolled back.

func commandLabel(target client.JobStatus) string {
	switch target {
	case client.StatusApplied:
		return "mark_applied"
	case client.StatusNew:
		return "undo"
	}
	return string(target)
}

// MarkApplied transitions a job to applied via the manual confirmation
// path. On confirmed success the detail view closes if it was showing
// this job.
func (c *Controller) MarkApplied(ctx context.Context, id string) (*Transition, error) {
	return c.begin(ctx, id, client.StatusApplied, true)
}

// Undo reverses a mark-applied back to new. The detail view stays open
// so the user can immediately re-apply.
func (c *Controller) Undo(ctx context.Context, id string) (*Transition, error) {
	return c.begin(ctx, id, client.StatusNew, false)
}

func (c *Controller) begin(ctx context.Context, id string, target client.JobStatus, closeDetail bool) (*Transition, error) {
	if err := client.ValidateJobID(id); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	if prev, ok := c.exiting[id]; ok {
		// Re-entrant call for the same id: stop the pending window so
		// at most one remote command is ever in flight per job, then
		// re-run the protocol from the top.
		if prev.timer != nil && prev.timer.Stop() {
			windowsCancelledTotal.Inc()
			prev.finish(ErrSuperseded)
		}
	}
	t := newTransition(id, target, closeDetail)
	c.exiting[id] = t
	t.timer = c.clock.AfterFunc(c.cfg.AnimationWindow, func() { c.commit(ctx, t) })
	c.mu.Unlock()

	commandsTotal.WithLabelValues(commandLabel(target)).Inc()
	c.publish()
	return t, nil
}

// commit runs once the animation window elapsed: issue the command,
// then reconcile on success or roll the visual state back on failure.
// The exiting set is always cleared — visual state must never be left
// stuck mid-transition.
func (c *Controller) commit(ctx context.Context, t *Transition) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		t.finish(ErrClosed)
		return
	}
	if c.exiting[t.JobID] != t {
		c.mu.Unlock()
		t.finish(ErrSuperseded)
		return
	}
	c.mu.Unlock()

	cctx, cancel := context.WithTimeout(ctx, c.cfg.CommandTimeout)
	defer cancel()
	_, err := c.api.UpdateJobStatus(cctx, t.JobID, t.Target)
	if err != nil {
		c.rollback(ctx, t, err)
		return
	}

	if rerr := c.reconcile(ctx); rerr != nil {
		log.Warn().Err(rerr).Str("job_id", t.JobID).Msg("reconciliation after command failed; visible set is stale until the next refresh")
	}

	c.mu.Lock()
	if c.exiting[t.JobID] == t {
		delete(c.exiting, t.JobID)
	}
	if t.closeDetail && c.detailID == t.JobID {
		c.detailID = ""
	}
	c.mu.Unlock()
	c.publish()
	t.finish(nil)
}

// rollback clears the optimistic visual state without re-fetching, so
// the job stays visually and logically unchanged. NotFound is the one
// exception: the row is gone remotely, so a re-fetch drops it locally.
func (c *Controller) rollback(ctx context.Context, t *Transition, err error) {
	commandFailuresTotal.WithLabelValues(commandLabel(t.Target), failureReason(err)).Inc()

	c.mu.Lock()
	if c.exiting[t.JobID] == t {
		delete(c.exiting, t.JobID)
	}
	c.mu.Unlock()
	c.publish()

	if errors.Is(err, client.ErrNotFound) {
		if rerr := c.reconcile(ctx); rerr != nil {
			log.Warn().Err(rerr).Str("job_id", t.JobID).Msg("re-fetch after NotFound failed")
		}
	}

	log.Debug().Err(err).Str("job_id", t.JobID).Str("command", commandLabel(t.Target)).Msg("transition rolled back")
	if c.cfg.ErrorHandler != nil {
		c.cfg.ErrorHandler(err)
	}
	t.finish(err)
}

// Apply triggers the automated apply flow. There is no animation window
// here; the remote decides whether the job lands in applied or failed
// and the follow-up reconciliation shows the outcome.
func (c *Controller) Apply(ctx context.Context, id string) error {
	if err := client.ValidateJobID(id); err != nil {
		return err
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.mu.Unlock()

	commandsTotal.WithLabelValues("apply").Inc()
	if err := c.api.TriggerApply(ctx, id); err != nil {
		commandFailuresTotal.WithLabelValues("apply", failureReason(err)).Inc()
		if errors.Is(err, client.ErrNotFound) {
			if rerr := c.reconcile(ctx); rerr != nil {
				log.Warn().Err(rerr).Str("job_id", id).Msg("re-fetch after NotFound failed")
			}
		}
		if c.cfg.ErrorHandler != nil {
			c.cfg.ErrorHandler(err)
		}
		return err
	}
	return c.reconcile(ctx)
}

// Delete removes a job remotely. Deletion is assumed irreversible once
// requested: if the job was open for detail viewing, the detail view
// closes regardless of how the follow-up fetch goes. The two-step user
// confirmation happens in the presentation layer before this is called.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := client.ValidateJobID(id); err != nil {
		return err
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.mu.Unlock()

	commandsTotal.WithLabelValues("delete").Inc()
	err := c.api.DeleteJob(ctx, id)
	if err != nil && !errors.Is(err, client.ErrNotFound) {
		commandFailuresTotal.WithLabelValues("delete", failureReason(err)).Inc()
		if c.cfg.ErrorHandler != nil {
			c.cfg.ErrorHandler(err)
		}
		return err
	}

	c.mu.Lock()
	if c.detailID == id {
		c.detailID = ""
	}
	c.mu.Unlock()
	c.publish()

	if rerr := c.reconcile(ctx); rerr != nil {
		log.Warn().Err(rerr).Str("job_id", id).Msg("reconciliation after delete failed; visible set is stale until the next refresh")
	}
	return err
}
