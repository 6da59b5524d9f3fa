package view

import "errors"

//Controller is the part of the scheduler the views use to start and stop the simulation
type Controller interface {
	Start()
	Stop()
	StepOnce()
}

//ErrGUIUnavailable is returned by GUI.Run when the binary is built without the ebiten tag
var ErrGUIUnavailable = errors.New("the GUI requires building with the 'ebiten' tag")
