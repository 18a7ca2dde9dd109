// Package anim holds the board selection state machine and the repeating
// task scheduler that drives frame cycling.
package anim

import (
	"sync"
	"time"
)

// Task is a cancellable handle on a repeating callback. Cancel is
// idempotent and never blocks on an in-flight callback.
type Task interface {
	Cancel()
}

// Scheduler starts repeating tasks. The production implementation runs on
// real time; tests inject one they drive by hand.
type Scheduler interface {
	Every(d time.Duration, fn func()) Task
}

// TickerScheduler runs each task on its own goroutine off a time.Ticker.
type TickerScheduler struct{}

func (TickerScheduler) Every(d time.Duration, fn func()) Task {
	t := &tickerTask{done: make(chan struct{})}
	ticker := time.NewTicker(d)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-t.done:
				return
			}
		}
	}()
	return t
}

type tickerTask struct {
	once sync.Once
	done chan struct{}
}

func (t *tickerTask) Cancel() {
	t.once.Do(func() { close(t.done) })
}
