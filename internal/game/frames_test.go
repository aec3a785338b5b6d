package game

import (
	"testing"
	"time"
)

func TestTickerFramesMonotonic(t *testing.T) {
	f := NewTickerFrames(time.Millisecond)
	defer f.Stop()

	var last time.Duration
	for i := 0; i < 5; i++ {
		select {
		case ts, ok := <-f.Frames():
			if !ok {
				t.Fatal("Frames() closed before Stop()")
			}
			if ts <= last {
				t.Errorf("frame %d at %v, not after %v", i, ts, last)
			}
			last = ts
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for a frame")
		}
	}
}

func TestTickerFramesStopClosesChannel(t *testing.T) {
	f := NewTickerFrames(time.Millisecond)
	f.Stop()
	f.Stop() // idempotent

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-f.Frames():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("Frames() not closed after Stop()")
		}
	}
}
