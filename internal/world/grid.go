package world

const (
	// Default board dimensions
	DefaultWidth  = 25
	DefaultHeight = 25
)

// Grid is a fixed-size board of cell types, stored row-major.
type Grid struct {
	Width  int
	Height int
	cells  [][]CellType
}

// NewGrid creates a board with every cell empty.
func NewGrid(width, height int) *Grid {
	cells := make([][]CellType, height)
	for y := range cells {
		cells[y] = make([]CellType, width)
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
	}
}

// InBounds returns true if (x, y) lies on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the cell type at (x, y).
// Callers must check InBounds first; out-of-range access panics.
func (g *Grid) Get(x, y int) CellType {
	return g.cells[y][x]
}

// Set stores the cell type at (x, y).
// Callers must check InBounds first; out-of-range access panics.
func (g *Grid) Set(x, y int, kind CellType) {
	g.cells[y][x] = kind
}

// Count returns how many cells hold the given type.
func (g *Grid) Count(kind CellType) int {
	n := 0
	for y := range g.cells {
		for _, c := range g.cells[y] {
			if c == kind {
				n++
			}
		}
	}
	return n
}

// Reset marks every cell empty.
func (g *Grid) Reset() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = CellEmpty
		}
	}
}

// Area returns the number of cells on the board.
func (g *Grid) Area() int {
	return g.Width * g.Height
}
