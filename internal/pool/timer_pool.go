// Package pool provides pooled timers for the client driver's event-wait
// backoff loop, avoiding a timer allocation per poll iteration.
package pool

import (
	"sync"
	"time"
)

var timers sync.Pool

// GetTimer returns a timer for the given duration d from the pool.
//
// Return back the timer to the pool with PutTimer.
func GetTimer(d time.Duration) *time.Timer {
	v := timers.Get()
	if v == nil {
		return time.NewTimer(d)
	}

	t, _ := v.(*time.Timer) // Only *time.Timer values are ever pooled
	if t.Reset(d) {
		// Timer was active, drain the channel to prevent potential leaks
		select {
		case <-t.C:
		default:
		}
	}

	return t
}

// PutTimer returns timer to the pool.
//
// t cannot be accessed after returning to the pool.
func PutTimer(t *time.Timer) {
	if !t.Stop() {
		// Drain t.C if it wasn't obtained by the caller yet.
		select {
		case <-t.C:
		default:
		}
	}
	timers.Put(t)
}
