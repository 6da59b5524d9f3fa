package view

import (
	"image/color"
	"math/rand"
	"torlife/src/universe"
)

//LiveColor is the color of live cells before the opacity is applied
var LiveColor = color.RGBA{R: 0, G: 255, B: 25, A: 255}

//PixelBuffer converts a grid into premultiplied RGBA pixels, one pixel per cell
type PixelBuffer struct {
	w, h int
	buf  []byte
	rnd  *rand.Rand
}

//NewPixelBuffer allocates the buffer for a grid of size w*h
func NewPixelBuffer(w int, h int, rnd *rand.Rand) *PixelBuffer {
	return &PixelBuffer{w: w, h: h, buf: make([]byte, 4*w*h), rnd: rnd}
}

//Fill converts the grid cells into pixels
//live cells get LiveColor with a random opacity from 0.5 to 1.0 in 0.1 steps, dead cells are transparent
func (p *PixelBuffer) Fill(g universe.Grid) {
	if w, h := g.Dimensions(); w != p.w || h != p.h {
		return
	}
	g.Walk(func(c universe.Cell) {
		base := (c.Y*p.w + c.X) * 4
		if !c.Alive() {
			p.buf[base+0] = 0
			p.buf[base+1] = 0
			p.buf[base+2] = 0
			p.buf[base+3] = 0
			return
		}
		a := randomOpacity(p.rnd)
		p.buf[base+0] = premultiply(LiveColor.R, a)
		p.buf[base+1] = premultiply(LiveColor.G, a)
		p.buf[base+2] = premultiply(LiveColor.B, a)
		p.buf[base+3] = a
	})
}

//Pixels exposes the backing slice
func (p *PixelBuffer) Pixels() []byte { return p.buf }

// Size returns the dimensions in cells.
func (p *PixelBuffer) Size() (int, int) { return p.w, p.h }

func randomOpacity(r *rand.Rand) uint8 {
	tenths := r.Intn(6) + 5
	return uint8(255 * tenths / 10)
}

func premultiply(c uint8, a uint8) uint8 {
	return uint8(uint16(c) * uint16(a) / 255)
}
