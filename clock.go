package main

import "time"

// Timer is a single armed firing that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock arms timers. The indirection exists so tests can drive the
// scheduler by hand instead of waiting on real time.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
