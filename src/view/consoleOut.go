package view

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
	"torlife/src/universe"

	"github.com/logrusorgru/aurora"
)

//ConsoleOut is the non-interactive renderer: it prints the progress (and optionally the field) as text
type ConsoleOut struct {
	w          io.Writer
	au         aurora.Aurora
	every      int
	showField  bool
	generation int
	startTime  time.Time
}

//NewConsoleOut creates the renderer writing to w
//the progress line is printed every 10 generations
func NewConsoleOut(w io.Writer, colors bool) *ConsoleOut {
	return &ConsoleOut{
		w:          w,
		au:         aurora.NewAurora(colors),
		every:      10,
		generation: -1,
	}
}

//ReportEvery sets how often the progress line is printed, n <= 0 disables it
func (c *ConsoleOut) ReportEvery(n int) {
	c.every = n
}

//ShowField enables printing of the whole field for every generation
func (c *ConsoleOut) ShowField(show bool) {
	c.showField = show
}

//Register prints the running configuration
func (c *ConsoleOut) Register(o universe.Options, g universe.Grid) {
	w, h := g.Dimensions()
	fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", w, h),
		"Interval":       o.Interval,
		"Max iterations": maxSteps(o.MaxSteps),
	})
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "\nSimulation started...")
}

//OnGenerationComputed implements universe.Renderer
//the first call (on registration) is the generation 0
func (c *ConsoleOut) OnGenerationComputed(g universe.Grid) {
	c.generation++
	if c.showField {
		fmt.Fprintf(c.w, "Generation %d:\n%s\n", c.generation, c.renderField(g))
	}
	if c.every > 0 && c.generation > 0 && c.generation%c.every == 0 {
		fmt.Fprintf(c.w, "  Generations done: %v, live cells: %v\n", c.generation, g.LiveCells())
	}
}

//Finish prints the final status of the simulation
func (c *ConsoleOut) Finish(st universe.Status) {
	resultData := map[string]interface{}{
		"Last generation": st.Generation,
		"Total time":      time.Since(c.startTime).Round(time.Millisecond),
		"Live cells":      st.LiveCells,
		"Mode":            stateLabel(c.au, st.RunningMode),
	}
	if st.Err != nil {
		resultData["Error"] = c.au.Red(st.Err.Error()).String()
	}
	fmt.Fprintln(c.w, "\nFinished:")
	c.printHashData(resultData)
}

func (c *ConsoleOut) renderField(g universe.Grid) string {
	var b strings.Builder
	for i, line := range strings.Split(g.String(), "\n") {
		if i != 0 {
			b.WriteByte('\n')
		}
		for _, ch := range line {
			if ch == '#' {
				b.WriteString(c.au.Green("█").String())
			} else {
				b.WriteString("░")
			}
		}
	}
	return b.String()
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}

func maxSteps(n int) string {
	if n <= 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%v steps", n)
}

func stateLabel(au aurora.Aurora, s universe.RunningState) string {
	switch s {
	case universe.RunningStateIdle:
		return au.Blue("waiting").String()
	case universe.RunningStateRunning:
		return au.Cyan("running").String()
	case universe.RunningStateFinished:
		return au.Red("finished").String()
	}
	return s.String()
}
