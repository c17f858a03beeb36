package ssd1322

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Bus is the serial transport to the controller. The driver only writes, so r
// is always nil. Any periph.io conn.Conn satisfies it.
type Bus interface {
	Tx(w, r []byte) error
}

// Line is a digital output: the data/command select line or the reset line.
// Any periph.io gpio.PinOut satisfies it.
type Line interface {
	Out(l gpio.Level) error
}

// Delayer blocks the caller for a whole number of milliseconds.
type Delayer interface {
	DelayMs(ms uint32)
}

// DelayFunc adapts a function to the Delayer interface.
type DelayFunc func(ms uint32)

// DelayMs calls f(ms).
func (f DelayFunc) DelayMs(ms uint32) {
	f(ms)
}

// Sleep is the Delayer backed by time.Sleep.
var Sleep Delayer = DelayFunc(func(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
})
