// Package image4bit provides a 4-bit grayscale image format for the SSD1322 display controller.
//
// The SSD1322 OLED controller uses 4-bit grayscale (16 intensity levels from 0-15).
// The ZJY128x64 module is wired so that every pixel of the 128×64 panel is
// addressed by one byte of controller RAM, with the gray level written to both
// nibbles of that byte.
//
// Memory layout example for a 4-pixel row:
//
//	Pixels: 0     1     2     3
//	Values: 5     10    3     12
//	Bytes:  0x55  0xAA  0x33  0xCC
//
// This package provides:
//
// - Gray4: A color type representing 4-bit grayscale (0-15)
// - Gray4Model: A color model for converting standard Go colors to Gray4
// - PairedNibble: An image.Image implementation matching the panel RAM layout
//
// Example usage:
//
//	// Create a 128x64 image
//	img := image4bit.NewPairedNibble(image.Rect(0, 0, 128, 64))
//
//	// Set a pixel to gray level 8
//	img.SetGray4(10, 20, image4bit.Gray4{Y: 8})
//
//	// Get a pixel
//	gray := img.Gray4At(10, 20)
//	println(gray.Y)  // Output: 8
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image4bit.Gray4{Y: 15}), image.Point{}, draw.Src)
package image4bit
