package game

import (
	"sync/atomic"

	"github.com/samdwyer/gridsnake/internal/entity"
)

// DirectionSource supplies the direction requested by the player.
// The session reads it once per tick, just before moving the snake.
type DirectionSource interface {
	Direction() entity.Direction
}

// Input holds the latest requested direction.
// It is written by the key-event goroutine and read by the loop.
type Input struct {
	dir atomic.Int32
}

// NewInput creates an input preset to dir.
func NewInput(dir entity.Direction) *Input {
	in := &Input{}
	in.Set(dir)
	return in
}

// Set records a new requested direction.
func (in *Input) Set(dir entity.Direction) {
	in.dir.Store(int32(dir))
}

// Direction returns the latest requested direction.
func (in *Input) Direction() entity.Direction {
	return entity.Direction(in.dir.Load())
}
