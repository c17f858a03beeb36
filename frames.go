package ssd1322

import (
	"image"

	"github.com/flavioheleno/ssd1322-zjy128x64/image4bit"
)

// Panel geometry.
const (
	Width  = 128
	Height = 64

	frameSize = Width * Height
)

// frames holds the front and back pixel buffers. Buffer front is the last one
// sent to the panel; drawing always targets front^1.
type frames struct {
	pix   [2][frameSize]byte
	front int
}

// setPixel writes c at (x, y) in the back buffer. Coordinates outside the
// panel are dropped.
func (f *frames) setPixel(x, y int, c image4bit.Gray4) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	f.pix[f.front^1][y*Width+x] = c.Packed()
}

// clear fills the whole back buffer with c.
func (f *frames) clear(c image4bit.Gray4) {
	f.backImage().Fill(c)
}

func (f *frames) frontPix() []byte {
	return f.pix[f.front][:]
}

func (f *frames) backPix() []byte {
	return f.pix[f.front^1][:]
}

// backImage returns a draw.Image view of the back buffer. The view aliases the
// buffer and is only valid until the next swap.
func (f *frames) backImage() *image4bit.PairedNibble {
	return &image4bit.PairedNibble{
		Pix:    f.backPix(),
		Stride: Width,
		Rect:   image.Rect(0, 0, Width, Height),
	}
}

func (f *frames) swap() {
	f.front ^= 1
}
