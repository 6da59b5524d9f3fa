//go:build ebiten

package view

import (
	"errors"
	"image/color"
	"math/rand"
	"sync"
	"time"
	"torlife/src/universe"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GUI renders the grid in a window and adapts the scheduler controls to the ebiten.Game interface.
type GUI struct {
	ctrl     Controller
	cellSize int

	mu    sync.Mutex
	grid  universe.Grid
	dirty bool

	pixels *PixelBuffer
	img    *ebiten.Image
}

// NewGUI creates the window renderer for a w*h grid.
func NewGUI(ctrl Controller, w, h, cellSize int) *GUI {
	if cellSize <= 0 {
		cellSize = universe.DefCellSize
	}
	return &GUI{
		ctrl:     ctrl,
		cellSize: cellSize,
		pixels:   NewPixelBuffer(w, h, rand.New(rand.NewSource(time.Now().UnixNano()))),
		img:      ebiten.NewImage(w, h),
	}
}

// OnGenerationComputed stores the grid for the next Draw. It is called from the scheduler goroutine.
func (g *GUI) OnGenerationComputed(grid universe.Grid) {
	g.mu.Lock()
	g.grid = grid
	g.dirty = true
	g.mu.Unlock()
}

// Run opens the window and blocks until it is closed.
func (g *GUI) Run(title string) error {
	w, h := g.pixels.Size()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w*g.cellSize, h*g.cellSize)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles the keyboard: Enter starts, Space stops, N steps once, Q or Esc quits.
func (g *GUI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctrl.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.StepOnce()
	}
	return nil
}

// Draw paints the cells and the grid lines.
func (g *GUI) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	if g.dirty {
		g.pixels.Fill(g.grid)
		g.img.WritePixels(g.pixels.Pixels())
		g.dirty = false
	}
	g.mu.Unlock()

	screen.Fill(color.White)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cellSize), float64(g.cellSize))
	screen.DrawImage(g.img, op)
	g.drawLines(screen)
}

func (g *GUI) drawLines(screen *ebiten.Image) {
	w, h := g.pixels.Size()
	cs := float32(g.cellSize)
	width, height := float32(w)*cs, float32(h)*cs
	for i := 0; i <= w; i++ {
		x := float32(i) * cs
		vector.StrokeLine(screen, x, 0, x, height, 1, color.Black, false)
	}
	for j := 0; j <= h; j++ {
		y := float32(j) * cs
		vector.StrokeLine(screen, 0, y, width, y, 1, color.Black, false)
	}
}

// Layout returns the logical screen size.
func (g *GUI) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.pixels.Size()
	return w * g.cellSize, h * g.cellSize
}
