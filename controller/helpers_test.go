package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/missionhud/missionhud/client"
)

// fakeTimer fires only when the test says so.
type fakeTimer struct {
	mu      sync.Mutex
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (t *fakeTimer) fire() {
	t.mu.Lock()
	if t.fired || t.stopped {
		t.mu.Unlock()
		return
	}
	t.fired = true
	f := t.f
	t.mu.Unlock()
	f()
}

// fakeClock collects timers; fireAll runs every pending callback
// synchronously on the test goroutine.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) AfterFunc(_ time.Duration, f func()) Timer {
	t := &fakeTimer{f: f}
	c.mu.Lock()
	c.timers = append(c.timers, t)
	c.mu.Unlock()
	return t
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) fireAll() {
	c.mu.Lock()
	pending := c.timers
	c.timers = nil
	c.mu.Unlock()
	for _, t := range pending {
		t.fire()
	}
}

// fakeRemote is an in-memory RemoteAPI with injectable failures.
type fakeRemote struct {
	mu          sync.Mutex
	jobs        []client.Job
	updateErr   error
	applyErr    error
	deleteErr   error
	listErr     error
	listCalls   int
	updateCalls int
	lastFilter  client.JobFilter

	// onList, when set, overrides the list behaviour entirely. It
	// receives the 1-based call number.
	onList func(call int) ([]client.Job, error)
}

func newFakeRemote(jobs ...client.Job) *fakeRemote {
	return &fakeRemote{jobs: jobs}
}

func testJob(id string, status client.JobStatus) client.Job {
	return client.Job{
		ID:        id,
		Title:     "Backend Engineer",
		Company:   "Initech",
		Source:    "linkedin",
		Type:      "greenhouse",
		Status:    status,
		CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakeRemote) ListJobs(_ context.Context, f client.JobFilter) ([]client.Job, error) {
	r.mu.Lock()
	r.listCalls++
	call := r.listCalls
	r.lastFilter = f
	hook := r.onList
	if hook != nil {
		r.mu.Unlock()
		return hook(call)
	}
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]client.Job, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

func (r *fakeRemote) UpdateJobStatus(_ context.Context, id string, status client.JobStatus) (*client.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs[i].Status = status
			r.jobs[i].UpdatedAt = r.jobs[i].UpdatedAt.Add(time.Minute)
			job := r.jobs[i]
			return &job, nil
		}
	}
	return nil, fmt.Errorf("update job: %w", client.ErrNotFound)
}

func (r *fakeRemote) TriggerApply(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.applyErr != nil {
		return r.applyErr
	}
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs[i].Status = client.StatusApplied
			return nil
		}
	}
	return fmt.Errorf("trigger apply: %w", client.ErrNotFound)
}

func (r *fakeRemote) DeleteJob(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete job: %w", client.ErrNotFound)
}

func (r *fakeRemote) GetProfile(context.Context) (*client.Profile, error) {
	return &client.Profile{FullName: "Ada Lovelace", FirstName: "Ada", Agent: "jett", AgentName: "AGENT"}, nil
}

func (r *fakeRemote) GetGamification(context.Context) (*client.Gamification, error) {
	return &client.Gamification{TotalXP: 150, Level: 2, LevelTitle: "OPERATIVE", XPInLevel: 50, XPForNextLevel: 150}, nil
}

func (r *fakeRemote) updates() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updateCalls
}

func (r *fakeRemote) lists() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listCalls
}

func testConfig() Config {
	return Config{
		AnimationWindow: 600 * time.Millisecond,
		PageSize:        50,
		CommandTimeout:  5 * time.Second,
	}
}

func newTestController(remote *fakeRemote) (*Controller, *fakeClock) {
	clk := newFakeClock()
	return New(remote, testConfig(), WithClock(clk)), clk
}
