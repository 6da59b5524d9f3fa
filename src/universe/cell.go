package universe

//State is the binary state of a cell
type State bool

const (
	Dead  State = false
	Alive State = true
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

//Cell is the immutable value living at position X, Y of a Grid
//a new generation always produces new Cell values
type Cell struct {
	X     int
	Y     int
	State State
}

//Alive reports whether the cell is alive
func (c Cell) Alive() bool {
	return c.State == Alive
}
