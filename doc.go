// Package ssd1322 controls a ZJY128x64 SSD1322 OLED module via SPI.
//
// The SSD1322 is a 4-bit grayscale OLED controller with a 480-column RAM.
// The ZJY128x64 module wires a 128×64 panel to the centred part of that RAM
// and consumes one byte per pixel. This driver implements the display.Drawer
// interface from periph.io and is also a draw.Image, so any Go drawing code
// can render into it.
//
// # Display Characteristics
//
// - 128×64 pixels, 4-bit grayscale with 16 intensity levels (0-15)
// - Double buffered: drawing targets the back buffer, Flush sends it
// - Every Flush sends the full frame (8192 bytes)
// - Adjustable contrast (0-255)
// - Normal, inverted, all-on and all-off display modes
//
// # Hardware Connection
//
// Connect the module to your system via 4-wire SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RES         → GPIO (any available pin)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/ssd1322-zjy128x64"
//		"github.com/flavioheleno/ssd1322-zjy128x64/image4bit"
//	)
//
//	func main() {
//		host.Init()
//
//		spiBus, _ := spireg.Open("")
//		defer spiBus.Close()
//
//		dev, _ := ssd1322.NewSPI(spiBus, gpioreg.ByName("GPIO22"), gpioreg.ByName("GPIO27"), nil)
//		defer dev.Halt()
//
//		dev.Clear(image4bit.Gray4{Y: 0})
//		for x := 0; x < ssd1322.Width; x++ {
//			dev.SetPixel(x, 32, image4bit.Gray4{Y: byte(x / 8)})
//		}
//		dev.Flush()
//	}
//
// # Initialization
//
// NewSPI runs Init, which performs the power-on sequence required by the
// controller: RES low for 10ms then high for 300ms, register programming with
// the display off, a clear of the panel RAM, display on and a 200ms settle.
// Use New and Init directly to supply another Bus, Line or Delayer, for
// example in tests.
//
// # Double Buffering
//
// SetPixel, Clear, Set and Draw write to the back buffer only and never touch
// the bus. Flush sends the back buffer and, once the transfer succeeded, makes
// it the front buffer. A failed Flush leaves both buffers untouched so it can
// simply be retried, or the display re-initialized with Init.
//
// The new back buffer holds the frame before last; redraw the whole frame (for
// example with Clear) before the next Flush.
//
// # Grayscale Colors
//
// Use the Gray4 color type:
//
//	black := image4bit.Gray4{Y: 0}
//	gray := image4bit.Gray4{Y: 8}
//	white := image4bit.Gray4{Y: 15}
//
// Standard Go colors are automatically converted to Gray4 grayscale.
//
// # Concurrency
//
// A Dev is not safe for concurrent use; every call blocks until the bus
// transfer and the delays complete.
//
// # Datasheet
//
// https://www.displayfuture.com/Display/datasheet/controller/SSD1322.pdf
package ssd1322
