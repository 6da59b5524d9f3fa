package universe

import "strings"

//Grid is the fixed-size rectangular field of cells for one generation
//the grid has no mutators: the next generation is always a new Grid
type Grid struct {
	width  int
	height int
	rows   [][]Cell
}

//Build creates the grid from the binary seed matrix (row-major)
//the cell x,y is alive when seed[y][x] == 1, dead otherwise
func Build(seed [][]int) (Grid, error) {
	if len(seed) == 0 || len(seed[0]) == 0 {
		return Grid{}, &ShapeError{}
	}
	width := len(seed[0])
	for y, row := range seed {
		if len(row) != width {
			return Grid{}, &ShapeError{Row: y, Want: width, Got: len(row)}
		}
	}
	g := createGrid(width, len(seed))
	for y, row := range seed {
		for x, v := range row {
			g.rows[y][x] = Cell{X: x, Y: y, State: State(v == 1)}
		}
	}
	return g, nil
}

//createGrid allocates the rows over one backing slice
//cells are not positioned, the caller must fill every cell
func createGrid(width int, height int) Grid {
	g := Grid{width: width, height: height, rows: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range g.rows {
		start := width * i
		g.rows[i] = b[start : start+width : start+width]
	}
	return g
}

//At returns the cell at position x, y
func (g Grid) At(x int, y int) (Cell, error) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Cell{}, &IndexError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	return g.rows[y][x], nil
}

//Dimensions returns width (columns) and height (rows)
func (g Grid) Dimensions() (width int, height int) {
	return g.width, g.height
}

//Walk calls cb for every cell, row by row
func (g Grid) Walk(cb func(c Cell)) {
	for y := range g.rows {
		for x := range g.rows[y] {
			cb(g.rows[y][x])
		}
	}
}

//LiveCells counts the alive cells
func (g Grid) LiveCells() int {
	n := 0
	g.Walk(func(c Cell) {
		if c.Alive() {
			n++
		}
	})
	return n
}

//Equal reports whether both grids have the same size and the same states
func (g Grid) Equal(o Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for y := range g.rows {
		for x := range g.rows[y] {
			if g.rows[y][x].State != o.rows[y][x].State {
				return false
			}
		}
	}
	return true
}

//Seed converts the grid back to the binary matrix it could be built from
func (g Grid) Seed() [][]int {
	seed := make([][]int, g.height)
	for y := range g.rows {
		seed[y] = make([]int, g.width)
		for x, c := range g.rows[y] {
			if c.Alive() {
				seed[y][x] = 1
			}
		}
	}
	return seed
}

func (g Grid) String() string {
	var b strings.Builder
	for y := range g.rows {
		if y != 0 {
			b.WriteByte('\n')
		}
		for _, c := range g.rows[y] {
			if c.Alive() {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
