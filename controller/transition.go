package controller

import (
	"sync"

	"github.com/missionhud/missionhud/client"
)

// Transition tracks one optimistic status change through its animation
// window, remote command and reconciliation.
type Transition struct {
	JobID  string
	Target client.JobStatus

	timer       Timer
	closeDetail bool

	once sync.Once
	done chan struct{}
	err  error
}

func newTransition(id string, target client.JobStatus, closeDetail bool) *Transition {
	return &Transition{
		JobID:       id,
		Target:      target,
		closeDetail: closeDetail,
		done:        make(chan struct{}),
	}
}

// Done is closed once the transition finished, whether it committed,
// rolled back or was superseded.
func (t *Transition) Done() <-chan struct{} { return t.done }

// Err reports the outcome. It is valid only after Done is closed; nil
// means the transition committed and the visible set was reconciled.
func (t *Transition) Err() error {
	<-t.done
	return t.err
}

func (t *Transition) finish(err error) {
	t.once.Do(func() {
		t.err = err
		close(t.done)
	})
}
