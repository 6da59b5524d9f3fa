package universe

//NextGeneration calculates the generation following current
//every cell of the new grid is computed from current only, nothing is written back to it
//on error no partial grid is returned
func NextGeneration(current Grid) (Grid, error) {
	next := createGrid(current.width, current.height)
	for y := range current.rows {
		for x, cell := range current.rows[y] {
			neighbours, err := Neighbours(current, x, y)
			if err != nil {
				return Grid{}, err
			}
			aliveCount := 0
			for _, n := range neighbours {
				if n.Alive() {
					aliveCount++
				}
			}
			next.rows[y][x] = Cell{X: x, Y: y, State: NextState(cell.State, aliveCount)}
		}
	}
	return next, nil
}

//Neighbours returns the Moore neighbourhood of x, y with toroidal wraparound
//order: top-left, top, top-right, left, right, bottom-left, bottom, bottom-right
//on a grid with width or height below 3 some positions repeat
func Neighbours(g Grid, x int, y int) (n [8]Cell, err error) {
	if _, err = g.At(x, y); err != nil {
		return
	}
	left, right := wrapPrev(x, g.width), wrapNext(x, g.width)
	up, down := wrapPrev(y, g.height), wrapNext(y, g.height)
	positions := [8][2]int{
		{left, up}, {x, up}, {right, up},
		{left, y}, {right, y},
		{left, down}, {x, down}, {right, down},
	}
	for i, p := range positions {
		if n[i], err = g.At(p[0], p[1]); err != nil {
			return
		}
	}
	return
}

//NextState is the birth/survival rule
func NextState(s State, aliveCount int) State {
	if s == Alive && (aliveCount < 2 || aliveCount > 3) {
		return Dead
	}
	if s == Dead && aliveCount == 3 {
		return Alive
	}
	return s
}

func wrapPrev(coord int, length int) int {
	if coord-1 >= 0 {
		return coord - 1
	}
	return length - 1
}

func wrapNext(coord int, length int) int {
	if coord+1 <= length-1 {
		return coord + 1
	}
	return 0
}
