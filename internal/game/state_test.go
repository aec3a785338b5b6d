package game

import (
	"strings"
	"sync"
	"testing"

	"github.com/samdwyer/gridsnake/internal/entity"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateStopped, "stopped"},
		{StateRunning, "running"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeNone, "none"},
		{OutcomeCollision, "collision"},
		{OutcomeBoardFull, "board_full"},
		{OutcomeQuit, "quit"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
		}
	}
}

func TestStatusLines(t *testing.T) {
	running := statusLines(Status{Score: 2, Length: 5, State: StateRunning})
	if len(running) != 3 {
		t.Fatalf("statusLines() returned %d lines, want 3", len(running))
	}
	if running[0] != "Score: 2  Length: 5" {
		t.Errorf("first line = %q", running[0])
	}
	if running[1] != "" {
		t.Errorf("second line while running = %q, want empty", running[1])
	}

	over := statusLines(Status{Score: 2, Length: 5, State: StateStopped, Outcome: OutcomeCollision})
	if !strings.HasPrefix(over[1], "Game over!") {
		t.Errorf("second line after collision = %q, want game over message", over[1])
	}
}

func TestRuneDirection(t *testing.T) {
	tests := []struct {
		r    rune
		want entity.Direction
		ok   bool
	}{
		{'w', entity.Up, true},
		{'k', entity.Up, true},
		{'D', entity.Right, true},
		{'j', entity.Down, true},
		{'a', entity.Left, true},
		{'x', entity.Up, false},
	}

	for _, tt := range tests {
		got, ok := runeDirection(tt.r)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("runeDirection(%q) = (%v, %v), want (%v, %v)", tt.r, got, ok, tt.want, tt.ok)
		}
	}
}

func TestInput(t *testing.T) {
	in := NewInput(entity.Up)
	if got := in.Direction(); got != entity.Up {
		t.Errorf("Direction() = %v, want up", got)
	}

	in.Set(entity.Left)
	if got := in.Direction(); got != entity.Left {
		t.Errorf("Direction() after Set = %v, want left", got)
	}
}

func TestMetricsSnapshot(t *testing.T) {
	var m Metrics
	m.IncFrames()
	m.IncFrames()
	m.AddTick(2_000_000)
	m.AddTick(4_000_000)
	m.IncFoodEaten()
	m.SetSpawnAttempts(7)

	snap := m.Snapshot()
	if snap["frames"] != int64(2) || snap["ticks"] != int64(2) {
		t.Errorf("frames/ticks = %v/%v, want 2/2", snap["frames"], snap["ticks"])
	}
	if snap["food_eaten"] != int64(1) || snap["spawn_attempts"] != int64(7) {
		t.Errorf("food/attempts = %v/%v, want 1/7", snap["food_eaten"], snap["spawn_attempts"])
	}
	if snap["avg_tick_ms"] != 3.0 {
		t.Errorf("avg_tick_ms = %v, want 3", snap["avg_tick_ms"])
	}
}

func TestMetricsConcurrentUpdates(t *testing.T) {
	var m Metrics
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.IncFrames()
				m.AddTick(1_000_000)
			}
		}()
	}
	wg.Wait()

	snap := m.Snapshot()
	if snap["frames"] != int64(800) || snap["ticks"] != int64(800) {
		t.Errorf("frames/ticks = %v/%v, want 800/800", snap["frames"], snap["ticks"])
	}
	if snap["avg_tick_ms"] != 1.0 {
		t.Errorf("avg_tick_ms = %v, want 1", snap["avg_tick_ms"])
	}
}
