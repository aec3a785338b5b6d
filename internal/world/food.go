package world

import (
	"errors"
	"math/rand"
)

const (
	// DefaultFoodMinDistSq is the squared distance food must exceed from the head.
	DefaultFoodMinDistSq = 10
	// DefaultFoodMaxAttempts caps random sampling before falling back to a full scan.
	DefaultFoodMaxAttempts = 1000
)

var (
	// ErrBoardFull is returned when no empty cell is left for food.
	ErrBoardFull = errors.New("world: board is full")
	// ErrNoEligibleCell is returned when every empty cell is too close to the head.
	ErrNoEligibleCell = errors.New("world: no empty cell far enough from head")
)

// Food is the single food item on the board. The zero value has no food.
type Food struct {
	X, Y   int
	active bool
}

// Active returns true if food is currently on the board.
func (f *Food) Active() bool {
	return f.active
}

// Position returns the food coordinates and whether food is active.
func (f *Food) Position() (int, int, bool) {
	return f.X, f.Y, f.active
}

// Place records food at (x, y).
func (f *Food) Place(x, y int) {
	f.X, f.Y = x, y
	f.active = true
}

// Clear removes the food reference. The grid cell is left to the caller.
func (f *Food) Clear() {
	f.active = false
}

// Spawner places food on random empty cells away from the snake's head.
type Spawner struct {
	rng         *rand.Rand
	minDistSq   int
	maxAttempts int

	// Attempts counts random samples taken since creation.
	Attempts int
}

// NewSpawner creates a spawner using the given RNG.
// Non-positive maxAttempts falls back to DefaultFoodMaxAttempts.
func NewSpawner(rng *rand.Rand, minDistSq, maxAttempts int) *Spawner {
	if maxAttempts <= 0 {
		maxAttempts = DefaultFoodMaxAttempts
	}
	return &Spawner{
		rng:         rng,
		minDistSq:   minDistSq,
		maxAttempts: maxAttempts,
	}
}

// EnsureFood places food if none is active.
//
// Random cells are sampled up to the attempt cap. If none qualifies, every
// cell is scanned and one eligible cell is chosen uniformly, so the call
// always terminates.
func (s *Spawner) EnsureFood(grid *Grid, food *Food, headX, headY int) error {
	if food.Active() {
		return nil
	}

	for i := 0; i < s.maxAttempts; i++ {
		s.Attempts++
		x := s.rng.Intn(grid.Width)
		y := s.rng.Intn(grid.Height)
		if s.eligible(grid, x, y, headX, headY) {
			s.place(grid, food, x, y)
			return nil
		}
	}

	// Fallback: exhaustive scan
	var candidates [][2]int
	empty := 0
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.Get(x, y) != CellEmpty {
				continue
			}
			empty++
			if s.eligible(grid, x, y, headX, headY) {
				candidates = append(candidates, [2]int{x, y})
			}
		}
	}

	if empty == 0 {
		return ErrBoardFull
	}
	if len(candidates) == 0 {
		return ErrNoEligibleCell
	}

	c := candidates[s.rng.Intn(len(candidates))]
	s.place(grid, food, c[0], c[1])
	return nil
}

// eligible returns true if (x, y) is empty and strictly farther than the
// minimum distance from the head.
func (s *Spawner) eligible(grid *Grid, x, y, headX, headY int) bool {
	dx := x - headX
	dy := y - headY
	if dx*dx+dy*dy <= s.minDistSq {
		return false
	}
	return grid.Get(x, y) == CellEmpty
}

func (s *Spawner) place(grid *Grid, food *Food, x, y int) {
	grid.Set(x, y, CellFood)
	food.Place(x, y)
}
