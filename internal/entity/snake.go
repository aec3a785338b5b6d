package entity

import "github.com/samdwyer/gridsnake/internal/world"

// InitialLength is the number of segments a new snake starts with.
const InitialLength = 3

// Segment is one board cell occupied by the snake.
type Segment struct {
	X, Y int            // Board position
	Dir  Direction      // Heading when the segment was the head
	Role world.CellType // CellHead, CellBody or CellTail
}

// Snake is an ordered body of segments, head first and tail last.
type Snake struct {
	body []Segment
}

// NewSnake creates a snake with its head at (x, y) facing dir.
// The remaining segments trail behind the head, opposite to dir.
func NewSnake(x, y int, dir Direction) *Snake {
	dx, dy := dir.Vector()
	body := make([]Segment, InitialLength)
	for i := range body {
		body[i] = Segment{
			X:    x - dx*i,
			Y:    y - dy*i,
			Dir:  dir,
			Role: world.CellBody,
		}
	}
	body[0].Role = world.CellHead
	body[len(body)-1].Role = world.CellTail

	return &Snake{body: body}
}

// Place marks every segment on the grid by its role.
func (s *Snake) Place(grid *world.Grid) {
	for _, seg := range s.body {
		grid.Set(seg.X, seg.Y, seg.Role)
	}
}

// Head returns the first segment.
func (s *Snake) Head() Segment {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading of the head.
func (s *Snake) Direction() Direction {
	return s.body[0].Dir
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.body))
	copy(out, s.body)
	return out
}

// Move advances the snake one cell and reports whether it survived.
//
// A request to reverse (or an invalid direction) continues straight instead.
// Moving off the board or into an occupied non-food cell returns false and
// leaves the snake and grid untouched. Moving onto food clears it and grows
// the snake by one segment.
func (s *Snake) Move(requested Direction, grid *world.Grid, food *world.Food) bool {
	head := s.body[0]

	dir := requested
	if !dir.Valid() || dir == head.Dir.Opposite() {
		dir = head.Dir
	}

	dx, dy := dir.Vector()
	x, y := head.X+dx, head.Y+dy

	if !grid.InBounds(x, y) {
		return false
	}
	target := grid.Get(x, y)
	if !target.IsEnterable() {
		return false
	}

	if target == world.CellFood {
		food.Clear()
	} else {
		tail := s.body[len(s.body)-1]
		grid.Set(tail.X, tail.Y, world.CellEmpty)
		s.body = s.body[:len(s.body)-1]

		last := len(s.body) - 1
		if last > 0 {
			s.body[last].Role = world.CellTail
			s.body[last].Dir = s.body[last-1].Dir
			grid.Set(s.body[last].X, s.body[last].Y, world.CellTail)
		}
	}

	if len(s.body) > 1 {
		s.body[0].Role = world.CellBody
		grid.Set(s.body[0].X, s.body[0].Y, world.CellBody)
	} else {
		s.body[0].Role = world.CellTail
		grid.Set(s.body[0].X, s.body[0].Y, world.CellTail)
	}

	grid.Set(x, y, world.CellHead)
	s.body = append([]Segment{{X: x, Y: y, Dir: dir, Role: world.CellHead}}, s.body...)

	return true
}

// Render asks the painter to draw every segment.
func (s *Snake) Render(p world.Painter) {
	for _, seg := range s.body {
		p.Paint(seg.X, seg.Y, seg.Role)
	}
}
