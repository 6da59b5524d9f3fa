//go:build !ebiten

package view

import "torlife/src/universe"

// GUI is a placeholder that satisfies the API expected by the window build.
type GUI struct{}

// NewGUI returns the placeholder, the window needs the ebiten build tag.
func NewGUI(Controller, int, int, int) *GUI { return &GUI{} }

// OnGenerationComputed is a no-op placeholder.
func (g *GUI) OnGenerationComputed(universe.Grid) {}

// Run always reports that the ebiten build tag is missing.
func (g *GUI) Run(string) error { return ErrGUIUnavailable }
