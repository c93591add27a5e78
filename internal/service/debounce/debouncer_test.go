package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCoalescesRapidTriggers(t *testing.T) {
	var calls int32
	d := New(50 * time.Millisecond)
	for i := 0; i < 10; i++ {
		d.Trigger(func() { atomic.AddInt32(&calls, 1) })
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestSeparatedTriggersEachFire(t *testing.T) {
	var calls int32
	d := New(20 * time.Millisecond)
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	time.Sleep(60 * time.Millisecond)
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("calls = %d, want 2", got)
	}
}

func TestStopCancelsPending(t *testing.T) {
	var calls int32
	d := New(30 * time.Millisecond)
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	d.Stop()
	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("calls = %d, want 0", got)
	}
}

func TestLastTriggerWins(t *testing.T) {
	var got int32
	d := New(30 * time.Millisecond)
	d.Trigger(func() { atomic.StoreInt32(&got, 1) })
	d.Trigger(func() { atomic.StoreInt32(&got, 2) })
	time.Sleep(80 * time.Millisecond)
	if atomic.LoadInt32(&got) != 2 {
		t.Fatalf("expected last trigger to win, got %d", got)
	}
}
