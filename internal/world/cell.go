// Package world provides the game board and food placement.
package world

// CellType is the semantic content of one board position.
type CellType int

const (
	// CellEmpty is a free cell.
	CellEmpty CellType = iota
	// CellHead is occupied by the snake's head.
	CellHead
	// CellBody is occupied by a snake segment between head and tail.
	CellBody
	// CellTail is occupied by the snake's last segment.
	CellTail
	// CellFood holds the active food item.
	CellFood
)

// String returns a human-readable cell name.
func (c CellType) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellHead:
		return "head"
	case CellBody:
		return "body"
	case CellTail:
		return "tail"
	case CellFood:
		return "food"
	default:
		return "unknown"
	}
}

// IsSnake returns true if the cell is occupied by any part of a snake.
func (c CellType) IsSnake() bool {
	return c == CellHead || c == CellBody || c == CellTail
}

// IsEnterable returns true if a head may move onto the cell.
func (c CellType) IsEnterable() bool {
	return c == CellEmpty || c == CellFood
}

// Painter paints the visual state of a single cell.
// It is the only way game logic reaches the presentation layer.
type Painter interface {
	Paint(x, y int, kind CellType)
}
