package controller

import "time"

// Clock abstracts timer creation so tests can drive the animation
// window by hand.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop reports true when it prevented the callback from running.
	Stop() bool
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
func (realClock) Now() time.Time                            { return time.Now() }
