package game

import "sync/atomic"

// Metrics records per-session counters for logging and tracing.
// Counters are atomic; read them through Snapshot.
type Metrics struct {
	frames        int64 // Frame callbacks received while running
	ticks         int64 // Simulation ticks performed
	foodEaten     int64 // Food items consumed
	spawnAttempts int64 // Random samples taken by the food spawner
	totalTickNs   int64 // Cumulative tick+render time in nanoseconds
}

// IncFrames counts one frame callback.
func (m *Metrics) IncFrames() { atomic.AddInt64(&m.frames, 1) }

// IncFoodEaten counts one food item consumed.
func (m *Metrics) IncFoodEaten() { atomic.AddInt64(&m.foodEaten, 1) }

// SetSpawnAttempts records the spawner's running sample count.
func (m *Metrics) SetSpawnAttempts(n int) { atomic.StoreInt64(&m.spawnAttempts, int64(n)) }

// AddTick counts one tick and the nanoseconds it took.
func (m *Metrics) AddTick(ns int64) {
	atomic.AddInt64(&m.ticks, 1)
	atomic.AddInt64(&m.totalTickNs, ns)
}

// Snapshot returns a read-only copy suitable for structured logging.
func (m *Metrics) Snapshot() map[string]any {
	ticks := atomic.LoadInt64(&m.ticks)
	total := atomic.LoadInt64(&m.totalTickNs)
	var avgMs float64
	if ticks > 0 {
		avgMs = float64(total) / float64(ticks) / 1e6
	}
	return map[string]any{
		"frames":         atomic.LoadInt64(&m.frames),
		"ticks":          ticks,
		"food_eaten":     atomic.LoadInt64(&m.foodEaten),
		"spawn_attempts": atomic.LoadInt64(&m.spawnAttempts),
		"avg_tick_ms":    avgMs,
	}
}
