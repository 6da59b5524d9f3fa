package universe

import (
	"log"
	"sync"
	"time"
)

//RunningState is the scheduler running mode at the concrete moment
type RunningState int

const (
	RunningStateIdle RunningState = iota
	RunningStateRunning
	RunningStateFinished
)

func (s RunningState) String() string {
	switch s {
	case RunningStateIdle:
		return "idle"
	case RunningStateRunning:
		return "running"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}

//Stepper is anything the Scheduler can drive, normally *Universe
type Stepper interface {
	Step() error
	Status() Status
}

//immediate is a closed channel: receiving from it never blocks
//used as the tick source when the interval is not positive
var immediate = func() <-chan time.Time {
	c := make(chan time.Time)
	close(c)
	return c
}()

//Scheduler invokes Step at a fixed interval between Start and Stop
//all the steps and commands are executed by one goroutine (the main loop),
//so steps never overlap and a started step always completes
type Scheduler struct {
	stepper   Stepper
	options   Options
	mode      RunningState
	ticker    *time.Ticker
	tickCh    <-chan time.Time
	stateCh   chan Status
	controlCh chan func()
	closeCh   chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
}

//NewScheduler creates the scheduler in idle mode and starts its main loop
//stateCh may be nil, otherwise every transition and every step is written to it
func NewScheduler(s Stepper, o *Options, stateCh chan Status) *Scheduler {
	if o == nil {
		o = &DefaultOptions
	}
	sc := &Scheduler{
		stepper:   s,
		options:   *o,
		stateCh:   stateCh,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	go sc.mainLoop()
	return sc
}

//Start switches to running mode, returns immediately
func (s *Scheduler) Start() {
	s.post(s.start)
}

//Stop switches back to idle mode, returns immediately
//a step which is already in progress still completes and renders
func (s *Scheduler) Stop() {
	s.post(s.stop)
}

//StepOnce does one step outside the schedule, returns immediately
func (s *Scheduler) StepOnce() {
	s.post(s.step)
}

//Mode returns the current running mode
func (s *Scheduler) Mode() RunningState {
	ch := make(chan RunningState, 1)
	s.post(func() { ch <- s.mode })
	select {
	case m := <-ch:
		return m
	case <-s.doneCh:
		return s.mode
	}
}

//Close stops the main loop and waits for it to exit
//commands posted after Close are ignored
func (s *Scheduler) Close() {
	s.closeOnce.Do(func() { close(s.closeCh) })
	<-s.doneCh
}

func (s *Scheduler) post(cmd func()) {
	select {
	case s.controlCh <- cmd:
	case <-s.closeCh:
	}
}

//mainLoop waits for commands and ticks and executes them one at a time
func (s *Scheduler) mainLoop() {
	defer close(s.doneCh)
	for {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case <-s.tickCh:
			s.step()
		case <-s.closeCh:
			s.stopTicker()
			return
		}
	}
}

func (s *Scheduler) start() {
	if s.mode != RunningStateIdle {
		return
	}
	if s.options.Interval > 0 {
		s.ticker = time.NewTicker(s.options.Interval)
		s.tickCh = s.ticker.C
	} else {
		s.tickCh = immediate
	}
	s.switchRunningState(RunningStateRunning, nil)
}

func (s *Scheduler) stop() {
	if s.mode != RunningStateRunning {
		return
	}
	s.stopTicker()
	s.switchRunningState(RunningStateIdle, nil)
}

//step does one step and finishes the schedule on error or when MaxSteps is reached
func (s *Scheduler) step() {
	if s.mode == RunningStateFinished {
		return
	}
	if s.limitReached() {
		s.finish(nil)
		return
	}
	if err := s.stepper.Step(); err != nil {
		log.Printf("simulation step failed: %v", err)
		s.finish(err)
		return
	}
	s.publish(nil)
	if s.limitReached() {
		s.finish(nil)
	}
}

func (s *Scheduler) limitReached() bool {
	return s.options.MaxSteps > 0 && s.stepper.Status().Generation >= s.options.MaxSteps
}

func (s *Scheduler) finish(err error) {
	s.stopTicker()
	s.switchRunningState(RunningStateFinished, err)
}

func (s *Scheduler) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	s.tickCh = nil
}

//switchRunningState switches the mode and writes the new status to the stateCh
func (s *Scheduler) switchRunningState(to RunningState, err error) {
	s.mode = to
	s.publish(err)
}

func (s *Scheduler) publish(err error) {
	if s.stateCh == nil {
		return
	}
	st := s.stepper.Status()
	st.RunningMode = s.mode
	if err != nil {
		st.Err = err
	}
	select {
	case s.stateCh <- st:
	case <-s.closeCh:
	}
}
