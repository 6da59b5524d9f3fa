package view

import (
	"bytes"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"
	"torlife/src/universe"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal renderer
//every access to the gocui views and to the last grid happens inside gocui's Update callbacks
type ConsoleUI struct {
	ctrl Controller
	g    *gocui.Gui
	k    []keyBindings

	//computed is written by the renderer caller only, the rest by gocui callbacks only
	computed   int
	grid       universe.Grid
	generation int
	status     universe.Status

	//live cells get a random shade of green, dead cells a plain filler
	liveFillers []string
	deadFiller  string
	rnd         *rand.Rand
}

func NewConsoleUI(ctrl Controller) *ConsoleUI {

	var err error
	t := ConsoleUI{
		ctrl: ctrl,
		liveFillers: []string{
			aurora.Green("█").String(),
			aurora.BrightGreen("█").String(),
			aurora.Green("▓").BgBrightGreen().String(),
		},
		deadFiller: "░",
		computed:   -1,
		generation: -1,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next step",
			t.cmdNextRound,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

//Start runs the gocui main loop until the user quits
func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

//Watch shows the scheduler statuses from stateCh until it is closed
func (t *ConsoleUI) Watch(stateCh <-chan universe.Status) {
	for st := range stateCh {
		st := st
		t.g.Update(func(g *gocui.Gui) error {
			t.status = st
			t.renderStatus(g)
			return nil
		})
	}
}

//OnGenerationComputed implements universe.Renderer
func (t *ConsoleUI) OnGenerationComputed(grid universe.Grid) {
	t.computed++
	generation := t.computed
	//gocui does not keep the order of updates, an older grid must not replace a newer one
	t.g.Update(func(g *gocui.Gui) error {
		if generation <= t.generation {
			return nil
		}
		t.grid = grid
		t.generation = generation
		t.renderField(g)
		t.renderStatus(g)
		return nil
	})
}

func (t *ConsoleUI) renderField(g *gocui.Gui) {
	v, e := g.View("battlefield")
	if e != nil {
		return
	}
	//the entire field is redrawing at once
	v.Clear()

	width, height := t.grid.Dimensions()
	crop := false
	maxW, maxH := v.Size()
	if width > maxW || height > maxH {
		crop = true
	}

	var b bytes.Buffer
	for y := 0; y < height; y++ {
		//discard the data outside the view area
		if y >= maxH {
			break
		}
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == (maxH-1) {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for x := 0; x < width && x < maxW; x++ {
			c, err := t.grid.At(x, y)
			if err != nil {
				log.Panicln(err)
			}
			if c.Alive() {
				b.WriteString(t.liveFillers[t.rnd.Intn(len(t.liveFillers))])
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui) {
	v, e := g.View("status")
	if e != nil {
		return
	}
	v.Clear()
	width, height := t.grid.Dimensions()
	_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", width, height))
	_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", t.generation))
	_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", t.grid.LiveCells()))
	_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", t.status.IterationTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", stateLabel(aurora.NewAurora(true), t.status.RunningMode)))
	if t.status.Err != nil {
		_, _ = fmt.Fprintln(v, t.renderProp("Error", "%v", aurora.Red(t.status.Err.Error())))
	}
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 12

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil
	}
	if _, err := t.headerLayout(g, 3, "Game of Life on a torus"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("status", 0, 3, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	t.renderStatus(g)

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Torus"
		v.Frame = true
	}
	t.renderField(g)

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.ctrl.StepOnce()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.ctrl.Start()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.ctrl.Stop()
	return nil
}
