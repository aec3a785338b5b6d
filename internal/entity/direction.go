// Package entity provides the snake and its movement rules.
package entity

// Direction is one of the four grid headings.
// The numeric values are the wire encoding used by input sources.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// vectors maps each direction to its unit step.
var vectors = [...][2]int{
	Up:    {0, -1},
	Right: {1, 0},
	Down:  {0, 1},
	Left:  {-1, 0},
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Valid returns true for the four defined directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Vector returns the unit step for the direction.
func (d Direction) Vector() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	v := vectors[d]
	return v[0], v[1]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "right":
		return Right, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	default:
		return Up, false
	}
}
