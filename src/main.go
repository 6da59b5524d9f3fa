package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"torlife/src/universe"
	"torlife/src/view"

	"github.com/integrii/flaggy"
)

type EnvOptions struct {
	interactive bool
	gui         bool
	template    string
	seedFile    string
	showField   bool
}

func main() {
	eo, uo := initOptions()

	seed, err := loadSeed(eo)
	if err != nil {
		log.Fatalf("load seed: %v", err)
	}
	u, err := universe.New(seed, uo)
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case eo.gui:
		runGUI(u, eo)
	case eo.interactive:
		runInteractive(u)
	default:
		runHeadless(u, eo)
	}
}

func runGUI(u *universe.Universe, eo *EnvOptions) {
	s := universe.NewScheduler(u, optionsPtr(u.Options()), nil)
	defer s.Close()
	w, h := u.Grid().Dimensions()
	g := view.NewGUI(s, w, h, u.Options().CellSize)
	u.RegisterRenderer(g)
	if err := g.Run("torlife - " + eo.template); err != nil {
		if errors.Is(err, view.ErrGUIUnavailable) {
			fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./src` or build with `-tags ebiten`.")
		}
		log.Fatal(err)
	}
}

func runInteractive(u *universe.Universe) {
	stateCh := make(chan universe.Status, 10)
	s := universe.NewScheduler(u, optionsPtr(u.Options()), stateCh)
	v := view.NewConsoleUI(s)
	u.RegisterRenderer(v)
	go v.Watch(stateCh)
	v.Start()
	s.Close()
	close(stateCh)
}

func runHeadless(u *universe.Universe, eo *EnvOptions) {
	fmt.Printf("\"The Life\" on a torus started...\n")

	stateCh := make(chan universe.Status, 10)
	s := universe.NewScheduler(u, optionsPtr(u.Options()), stateCh)
	out := view.NewConsoleOut(os.Stdout, true)
	out.ShowField(eo.showField)
	out.Register(u.Options(), u.Grid())
	u.RegisterRenderer(out)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	out.Start()
	s.Start()
	var last universe.Status
	for done := false; !done; {
		select {
		case st := <-stateCh:
			last = st
			done = st.RunningMode == universe.RunningStateFinished
		case <-interrupt:
			//the step in progress still completes, its status is the last one
			s.Stop()
			last = waitIdle(stateCh, last)
			done = true
		}
	}
	s.Close()
	close(stateCh)
	out.Finish(last)
	if last.Err != nil {
		os.Exit(1)
	}
}

func waitIdle(stateCh chan universe.Status, last universe.Status) universe.Status {
	for st := range stateCh {
		last = st
		if st.RunningMode != universe.RunningStateRunning {
			break
		}
	}
	return last
}

func loadSeed(eo *EnvOptions) ([][]int, error) {
	if eo.seedFile != "" {
		f, err := os.Open(eo.seedFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		eo.template = eo.seedFile
		return universe.ParseSeed(f)
	}
	tmpl, err := universe.TemplateByName(eo.template)
	if err != nil {
		return nil, err
	}
	return tmpl.Seed, nil
}

func optionsPtr(o universe.Options) *universe.Options {
	return &o
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultOptions
	uo = &o
	eo = &EnvOptions{template: "default"}
	flaggy.SetName("torlife")
	flaggy.SetDescription("Conway's Game of Life on a wraparound grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Duration(&uo.Interval, "i", "interval", "Simulation speed (interval between the steps), for example 150ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 runs until stopped")
	flaggy.Int(&uo.CellSize, "c", "cellSize", "Cell size in pixels for the GUI")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive terminal mode")
	flaggy.Bool(&eo.gui, "g", "gui", "Start the GUI window (needs the ebiten build tag)")
	flaggy.Bool(&eo.showField, "p", "print", "Print the field on every generation in non-interactive mode")
	flaggy.String(&eo.template, "t", "template", "Seed template ["+strings.Join(universe.TemplateNames(), "|")+"]")
	flaggy.String(&eo.seedFile, "f", "file", "Seed file with rows of 0/1 (or ./#), overrides the template")

	flaggy.Parse()

	if _, err := universe.TemplateByName(eo.template); err != nil && eo.seedFile == "" {
		flaggy.ShowHelpAndExit(err.Error())
	}
	return
}
