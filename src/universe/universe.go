package universe

import (
	"fmt"
	"time"
)

//Options represents the Universe's configurable options
type Options struct {
	Interval time.Duration //interval between the scheduled steps
	MaxSteps int           //0 means the simulation runs until stopped
	CellSize int           //cell size in pixels, used by the pixel renderer only
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	Generation    int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
	Err           error //the error of the last step, if any
}

//Renderer receives every freshly computed generation
//the grid is immutable, renderers keep it as long as they like
type Renderer interface {
	OnGenerationComputed(grid Grid)
}

//RendererFunc adapts a function to the Renderer interface
type RendererFunc func(grid Grid)

func (f RendererFunc) OnGenerationComputed(grid Grid) { f(grid) }

//default options
const (
	DefSimulationInterval = time.Second
	DefMaxSteps           = 0
	DefCellSize           = 15
)

var DefaultOptions = Options{
	Interval: DefSimulationInterval,
	MaxSteps: DefMaxSteps,
	CellSize: DefCellSize,
}

//Universe is the simulation object: it owns the current grid
//and replaces it with the next generation on every Step
//Universe is not safe for concurrent Step calls, the Scheduler is its only driver
type Universe struct {
	options   Options
	grid      Grid
	status    Status
	renderers []Renderer
}

//New creates the Universe settled with the seed matrix
func New(seed [][]int, o *Options) (*Universe, error) {
	if o == nil {
		o = &DefaultOptions
	}
	g, err := Build(seed)
	if err != nil {
		return nil, fmt.Errorf("build initial grid: %w", err)
	}
	u := &Universe{options: *o, grid: g}
	u.status.LiveCells = g.LiveCells()
	return u, nil
}

//RegisterRenderer registers the renderer, it immediately receives the current grid
func (u *Universe) RegisterRenderer(r Renderer) {
	u.renderers = append(u.renderers, r)
	r.OnGenerationComputed(u.grid)
}

//Step replaces the current grid with the next generation and notifies the renderers
//on error the current grid stays untouched and no renderer is called
func (u *Universe) Step() error {
	start := time.Now()
	next, err := NextGeneration(u.grid)
	if err != nil {
		u.status.Err = err
		return fmt.Errorf("generation %d: %w", u.status.Generation+1, err)
	}
	u.grid = next
	u.status.Generation++
	u.status.LiveCells = next.LiveCells()
	u.status.IterationTime = time.Since(start)
	u.status.Err = nil
	u.refreshView()
	return nil
}

//Grid returns the current generation
func (u *Universe) Grid() Grid {
	return u.grid
}

//Status returns current universe status represented by Status struct
func (u *Universe) Status() Status {
	return u.status
}

//Options returns current universe configuration represented by Options struct
func (u *Universe) Options() Options {
	return u.options
}

//refreshView passes the current grid to all registered renderers
func (u *Universe) refreshView() {
	for _, r := range u.renderers {
		r.OnGenerationComputed(u.grid)
	}
}
