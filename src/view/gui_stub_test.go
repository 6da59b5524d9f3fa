//go:build !ebiten

package view

import (
	"errors"
	"testing"
)

func TestGUIStub(t *testing.T) {
	g := NewGUI(nil, 4, 4, 10)
	g.OnGenerationComputed(newBlinker(t).Grid())
	if err := g.Run("test"); !errors.Is(err, ErrGUIUnavailable) {
		t.Fatalf("expected ErrGUIUnavailable, got %v", err)
	}
}
