package ssd1322

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/ssd1322-zjy128x64/image4bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Command bytes.
const (
	cmdColumnAddress = 0x15
	cmdWriteRAM      = 0x5C
	cmdRowAddress    = 0x75
	cmdRemap         = 0xA0
	cmdStartLine     = 0xA1
	cmdOffsetLine    = 0xA2
	cmdModeAllOff    = 0xA4
	cmdModeAllOn     = 0xA5
	cmdModeNormal    = 0xA6
	cmdModeInvert    = 0xA7
	cmdDisplayOff    = 0xAE
	cmdDisplayOn     = 0xAF
	cmdClockDivider  = 0xB3
	cmdEnhancementA  = 0xB4
	cmdContrast      = 0xC1
	cmdMuxRatio      = 0xCA
	cmdEnhancementB  = 0xD1
)

// RAM window the panel is wired to. The controller addresses its 480 columns
// in groups of four; the module only uses the centred 0x1C..0x5B range.
const (
	columnStart = 0x1C
	columnEnd   = 0x5B
	rowStart    = 0x00
	rowEnd      = Height - 1
)

// Power-on timing, in milliseconds. These are datasheet minimums.
const (
	resetPulseMs = 10
	resetHoldMs  = 300
	displayOnMs  = 200
)

// Oscillator frequency and clock divisor, packed into one byte by Init.
const (
	clockFrequency = 9
	clockDivisor   = 1
)

// Mode selects how the controller maps RAM to the panel.
type Mode byte

// Display modes.
const (
	ModeNormal Mode = cmdModeNormal
	ModeAllOn  Mode = cmdModeAllOn
	ModeAllOff Mode = cmdModeAllOff
	ModeInvert Mode = cmdModeInvert
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAllOn:
		return "all-on"
	case ModeAllOff:
		return "all-off"
	case ModeInvert:
		return "invert"
	default:
		return fmt.Sprintf("Mode(%#02x)", byte(m))
	}
}

type state uint8

const (
	stateUninitialized state = iota
	stateReady
	stateHalted
)

// Opts is the configuration used by NewSPI.
type Opts struct {
	// Frequency of the SPI clock (default: 8MHz).
	Frequency physic.Frequency
	// Mode of the SPI port (default: Mode0).
	Mode spi.Mode
	// Delay is used for the power-on timing (default: Sleep).
	Delay Delayer
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Frequency: 8 * physic.MegaHertz,
	Mode:      spi.Mode0,
	Delay:     Sleep,
}

// Dev is the device handle for a ZJY128x64 SSD1322 module.
//
// Dev is not safe for concurrent use.
type Dev struct {
	// Communication
	c   Bus
	dc  Line
	rst Line

	frames frames
	state  state
}

// New returns a driver for the panel behind bus. No I/O is performed; call
// Init before Flush.
func New(bus Bus, dc, rst Line) *Dev {
	return &Dev{
		c:   bus,
		dc:  dc,
		rst: rst,
	}
}

// NewSPI connects to the SSD1322 over p and initializes the display.
//
// The port is configured for 8-bit transfers using opts.Frequency and
// opts.Mode. dc is the Data/Command pin and rst the reset pin; both are
// required.
//
// opts can be nil to use DefaultOpts.
func NewSPI(p spi.Port, dc, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil || dc == gpio.INVALID || rst == nil || rst == gpio.INVALID {
		return nil, ErrInvalidPin
	}

	o := DefaultOpts
	if opts != nil {
		if opts.Frequency > 0 {
			o.Frequency = opts.Frequency
		}
		o.Mode = opts.Mode
		if opts.Delay != nil {
			o.Delay = opts.Delay
		}
	}

	c, err := p.Connect(o.Frequency, o.Mode, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1322: failed to connect SPI: %w", err)
	}

	d := New(c, dc, rst)
	if err := d.Init(o.Delay); err != nil {
		return nil, err
	}
	return d, nil
}

// Init resets the controller, programs its registers, clears the panel RAM
// and turns the display on. It blocks for at least 510ms.
//
// Init may be called again at any time to recover from a failed transfer.
// A nil delay uses Sleep.
func (d *Dev) Init(delay Delayer) error {
	if delay == nil {
		delay = Sleep
	}
	d.state = stateUninitialized

	d.reset(delay)

	for _, cmd := range [][]byte{
		{cmdClockDivider, clockFrequency<<4 | clockDivisor},
		{cmdMuxRatio, (Height - 1) & 0x7F},
		{cmdStartLine, 0x00},
		{cmdOffsetLine, 0x00},
		{cmdRemap, 0x16, 0x11},
		{byte(ModeNormal)},
		// Keep the panel dark while the rest is programmed.
		{cmdDisplayOff},
		// Display enhancement A and B, values required by this module.
		{cmdEnhancementA, 0xA0, 0xFD},
		{cmdEnhancementB, 0x82, 0x20},
	} {
		if err := d.command(cmd[0], cmd[1:]...); err != nil {
			return err
		}
	}

	// Overwrite whatever the RAM held at power-up.
	if err := d.writeFrame(d.frames.frontPix()); err != nil {
		return err
	}

	if err := d.command(cmdDisplayOn); err != nil {
		return err
	}
	delay.DelayMs(displayOnMs)

	d.state = stateReady
	return nil
}

// reset pulses the reset line. Pin errors are ignored.
func (d *Dev) reset(delay Delayer) {
	_ = d.rst.Out(gpio.High)
	_ = d.rst.Out(gpio.Low)
	delay.DelayMs(resetPulseMs)
	_ = d.rst.Out(gpio.High)
	delay.DelayMs(resetHoldMs)
}

// SetPixel sets the pixel at (x, y) of the back buffer. Coordinates outside
// the panel are ignored.
func (d *Dev) SetPixel(x, y int, c image4bit.Gray4) {
	d.frames.setPixel(x, y, c)
}

// Clear fills the back buffer with c.
func (d *Dev) Clear(c image4bit.Gray4) {
	d.frames.clear(c)
}

// Set sets the pixel at (x, y) of the back buffer, converting c to Gray4.
// It implements draw.Image.
func (d *Dev) Set(x, y int, c color.Color) {
	d.frames.setPixel(x, y, image4bit.Gray4Model.Convert(c).(image4bit.Gray4))
}

// At returns the color of the pixel at (x, y) of the back buffer.
func (d *Dev) At(x, y int) color.Color {
	return d.frames.backImage().Gray4At(x, y)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image4bit.Gray4Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// Flush sends the back buffer to the panel. On success the sent buffer
// becomes the front buffer and drawing continues on the other one. On failure
// the buffers are left as they were.
func (d *Dev) Flush() error {
	if err := d.ready(); err != nil {
		return err
	}
	if err := d.writeFrame(d.frames.backPix()); err != nil {
		return err
	}
	d.frames.swap()
	return nil
}

// Draw composes src onto the back buffer at dst and flushes it.
// It implements display.Drawer.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if err := d.ready(); err != nil {
		return err
	}
	if dst = dst.Intersect(d.Bounds()); !dst.Empty() {
		draw.Draw(d.frames.backImage(), dst, src, sp, draw.Src)
	}
	return d.Flush()
}

// Write loads a raw frame into the back buffer and flushes it. The frame is
// one gray level per pixel, row major, exactly Width*Height bytes. Only the
// low nibble of each byte is used.
func (d *Dev) Write(pixels []byte) (int, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}
	if len(pixels) != frameSize {
		return 0, ErrInvalidSize
	}
	back := d.frames.backPix()
	for i, b := range pixels {
		back[i] = image4bit.Gray4{Y: b}.Packed()
	}
	if err := d.Flush(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// SetMode switches between normal, inverted and all on/off display modes.
func (d *Dev) SetMode(m Mode) error {
	if err := d.ready(); err != nil {
		return err
	}
	switch m {
	case ModeNormal, ModeAllOn, ModeAllOff, ModeInvert:
	default:
		return fmt.Errorf("ssd1322: unknown display mode %s", m)
	}
	return d.command(byte(m))
}

// Invert inverts the display colors (black becomes white and vice versa).
func (d *Dev) Invert(invert bool) error {
	if invert {
		return d.SetMode(ModeInvert)
	}
	return d.SetMode(ModeNormal)
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(level byte) error {
	if err := d.ready(); err != nil {
		return err
	}
	return d.command(cmdContrast, level)
}

// Halt turns the display off. Further transfers fail with ErrHalted until
// Init is called again.
func (d *Dev) Halt() error {
	switch d.state {
	case stateHalted:
		return nil
	case stateUninitialized:
		return ErrNotReady
	}
	if err := d.command(cmdDisplayOff); err != nil {
		return err
	}
	d.state = stateHalted
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1322.Dev{%dx%d}", Width, Height)
}

func (d *Dev) ready() error {
	switch d.state {
	case stateReady:
		return nil
	case stateHalted:
		return ErrHalted
	default:
		return ErrNotReady
	}
}

// writeFrame points the RAM window at the panel area and streams pix.
func (d *Dev) writeFrame(pix []byte) error {
	if err := d.command(cmdColumnAddress, columnStart, columnEnd); err != nil {
		return err
	}
	if err := d.command(cmdRowAddress, rowStart, rowEnd); err != nil {
		return err
	}
	if err := d.command(cmdWriteRAM); err != nil {
		return err
	}
	return d.sendData("frame", pix)
}

// command sends cmd followed by its arguments, one byte per transfer, with
// the DC line low for the command and high for each argument.
func (d *Dev) command(cmd byte, args ...byte) error {
	_ = d.dc.Out(gpio.Low)
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return &TransportError{Op: fmt.Sprintf("command %#02x", cmd), Err: err}
	}
	for _, arg := range args {
		if err := d.sendData(fmt.Sprintf("argument of %#02x", cmd), []byte{arg}); err != nil {
			return err
		}
	}
	return nil
}

// sendData raises DC and writes p. Buses reporting a maximum transfer size get
// p in consecutive chunks.
func (d *Dev) sendData(op string, p []byte) error {
	_ = d.dc.Out(gpio.High)
	chunk := len(p)
	if l, ok := d.c.(conn.Limits); ok {
		if m := l.MaxTxSize(); m > 0 && m < chunk {
			chunk = m
		}
	}
	for len(p) > 0 {
		n := min(chunk, len(p))
		if err := d.c.Tx(p[:n], nil); err != nil {
			return &TransportError{Op: op, Err: err}
		}
		p = p[n:]
	}
	return nil
}

// Interface checks
var (
	_ display.Drawer = (*Dev)(nil)
	_ draw.Image     = (*Dev)(nil)
)
