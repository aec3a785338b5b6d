package game

import (
	"sync"
	"time"
)

// FrameSource delivers frame timestamps, measured from the source's creation.
// It plays the role of the "next frame" callback scheduler.
type FrameSource interface {
	Frames() <-chan time.Duration
	Stop()
}

// TickerFrames is a FrameSource backed by time.Ticker.
type TickerFrames struct {
	ticker *time.Ticker
	start  time.Time
	out    chan time.Duration
	done   chan struct{}
	once   sync.Once
}

// NewTickerFrames starts emitting a frame every interval.
func NewTickerFrames(interval time.Duration) *TickerFrames {
	f := &TickerFrames{
		ticker: time.NewTicker(interval),
		start:  time.Now(),
		out:    make(chan time.Duration),
		done:   make(chan struct{}),
	}
	go f.run()
	return f
}

func (f *TickerFrames) run() {
	defer close(f.out)
	for {
		select {
		case <-f.done:
			return
		case t := <-f.ticker.C:
			select {
			case f.out <- t.Sub(f.start):
			case <-f.done:
				return
			}
		}
	}
}

// Frames returns the frame channel. It is closed after Stop.
func (f *TickerFrames) Frames() <-chan time.Duration {
	return f.out
}

// Stop cancels further frames. Safe to call more than once.
func (f *TickerFrames) Stop() {
	f.once.Do(func() {
		f.ticker.Stop()
		close(f.done)
	})
}
