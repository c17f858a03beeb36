package image4bit

import (
	"image"
	"image/color"
)

// Gray4 represents a 4-bit grayscale color (0-15 intensity levels).
// Only the lower 4 bits of Y are used.
type Gray4 struct {
	Y uint8
}

// RGBA converts the Gray4 color to standard RGBA.
// The 4-bit gray value (0-15) is scaled to 16-bit (0-65535).
func (c Gray4) RGBA() (r, g, b, a uint32) {
	// 0xF * 0x1111 = 0xFFFF, 0x5 * 0x1111 = 0x5555, etc.
	y := uint32(c.Y&0x0F) * 0x1111
	return y, y, y, 0xFFFF
}

// Packed returns the byte stored for this gray level: the 4-bit value in both
// the high and the low nibble.
func (c Gray4) Packed() byte {
	y := c.Y & 0x0F
	return y<<4 | y
}

// toGray4 converts any color.Color to Gray4.
func toGray4(c color.Color) color.Color {
	if g, ok := c.(Gray4); ok {
		return g
	}
	r, g, b, _ := c.RGBA()
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B
	y := (299*r + 587*g + 114*b + 500) / 1000
	// Convert 16-bit (0-65535) to 4-bit (0-15)
	return Gray4{Y: uint8(y >> 12)}
}

// Gray4Model converts colors to Gray4.
var Gray4Model = color.ModelFunc(toGray4)

// PairedNibble is a 4-bit grayscale image stored one pixel per byte, the gray
// level replicated into both nibbles.
type PairedNibble struct {
	Pix    []byte          // Pixel data (1 pixel per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewPairedNibble creates a new PairedNibble image with the specified bounds.
func NewPairedNibble(r image.Rectangle) *PairedNibble {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &PairedNibble{Rect: r}
	}
	return &PairedNibble{
		Pix:    make([]byte, w*h),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *PairedNibble) ColorModel() color.Model {
	return Gray4Model
}

// Bounds returns the image bounds.
func (p *PairedNibble) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *PairedNibble) At(x, y int) color.Color {
	return p.Gray4At(x, y)
}

// Gray4At returns the Gray4 color of the pixel at (x, y).
func (p *PairedNibble) Gray4At(x, y int) Gray4 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Gray4{}
	}
	return Gray4{Y: p.Pix[p.PixOffset(x, y)] & 0x0F}
}

// Set sets the color of the pixel at (x, y). Points outside the bounds are
// ignored.
func (p *PairedNibble) Set(x, y int, c color.Color) {
	p.SetGray4(x, y, Gray4Model.Convert(c).(Gray4))
}

// SetGray4 sets the Gray4 color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *PairedNibble) SetGray4(x, y int, c Gray4) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = c.Packed()
}

// Fill sets every pixel of the image to c.
func (p *PairedNibble) Fill(c Gray4) {
	v := c.Packed()
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// PixOffset returns the index of the byte holding the pixel at (x, y).
func (p *PairedNibble) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}
