// Package rgb565 provides the 16-bit RGB565 pixel format used by the RA8875
// display controller.
//
// RGB565 packs a pixel into 16 bits: 5 bits red, 6 bits green, 5 bits blue.
// Pixels are stored big-endian, matching the byte order the controller
// expects on its memory write port.
//
// Memory layout example for a 2-pixel row:
//
//	Pixels: red      green
//	Values: 0xF800   0x07E0
//	Bytes:  0xF8 0x00 0x07 0xE0
//
// This package provides:
//
// - RGB565: a color type holding a packed 5-6-5 value
// - Model: a color model converting standard Go colors to RGB565
// - Image: an image.Image implementation in the controller's native format
//
// Example usage:
//
//	// Create a 800x480 image
//	img := rgb565.NewImage(image.Rect(0, 0, 800, 480))
//
//	// Set a pixel to pure red
//	img.SetRGB565(10, 20, rgb565.New(255, 0, 0))
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(rgb565.New(0, 0, 255)), image.Point{}, draw.Src)
package rgb565
