package game

// Grid is an immutable boolean board indexed by Position. With returns a copy.
type Grid struct {
	Width  int
	Height int
	cells  []bool
}

func NewGrid(width, height int) Grid {
	return Grid{
		Width:  width,
		Height: height,
		cells:  make([]bool, width*height),
	}
}

// InBounds reports whether p lies on the grid.
func (g Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell value, false outside the grid.
func (g Grid) At(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.cells[p.Y*g.Width+p.X]
}

// With returns a copy of the grid with the cell at p set to value.
func (g Grid) With(p Position, value bool) Grid {
	if !g.InBounds(p) {
		panic("position out of grid bounds: " + p.String())
	}
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	cells[p.Y*g.Width+p.X] = value
	return Grid{Width: g.Width, Height: g.Height, cells: cells}
}

func (g Grid) Count() int {
	count := 0
	for _, cell := range g.cells {
		if cell {
			count++
		}
	}
	return count
}

// List returns the set cells ordered by x, then y.
func (g Grid) List() []Position {
	var positions []Position
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			if g.cells[y*g.Width+x] {
				positions = append(positions, Position{x, y})
			}
		}
	}
	return positions
}

// set mutates the grid in place and is only used while a layout is being built.
func (g Grid) set(p Position) {
	g.cells[p.Y*g.Width+p.X] = true
}
