package anim

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerSchedulerFires(t *testing.T) {
	var fired atomic.Int64
	s := &TickerScheduler{}
	task := s.Every(5*time.Millisecond, func() {
		fired.Add(1)
	})

	deadline := time.Now().Add(time.Second)
	for fired.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if fired.Load() == 0 {
		t.Fatal("scheduler never fired")
	}

	task.Cancel()
	after := fired.Load()
	time.Sleep(30 * time.Millisecond)
	// one in-flight fire may still land right after Cancel, but no more
	if got := fired.Load(); got > after+1 {
		t.Fatalf("fired %d times after Cancel", got-after)
	}
}

func TestTickerTaskCancelIdempotent(t *testing.T) {
	s := &TickerScheduler{}
	task := s.Every(time.Hour, func() {})
	task.Cancel()
	task.Cancel() // must not panic or block
}
