// Package ra8875 controls a RAiO RA8875 TFT display controller via SPI.
//
// The RA8875 drives 16-bit color TFT panels and offloads most drawing to the
// chip: lines, rectangles, circles, ellipses and triangles are rendered by a
// hardware drawing engine, and an internal font engine renders text without
// host-side glyph data. A resistive touch screen digitizer is built in.
// This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 16-bit RGB565 color
// - Supported panel sizes: 800×480, 480×272, 480×128 and 480×80
// - Hardware-accelerated lines, rectangles, circles, ellipses, curves,
//   triangles and rounded rectangles with completion polling
// - Built-in text engine with 4 scale factors and transparent backgrounds
// - Resistive touch digitizer with 10-bit coordinates
// - Backlight brightness control via PWM
//
// # Hardware Connection
//
// Connect the RA8875 board to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VIN         → 3.3V or 5V
//	SCK         → SPI Clock (SCLK)
//	MOSI        → SPI Data Out (MOSI)
//	MISO        → SPI Data In (MISO)
//	CS          → SPI Chip Select
//	RST         → Optional: GPIO for hardware reset
//	INT         → Optional: GPIO for touch interrupt
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"log"
//
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ra8875"
//		"periph.io/x/devices/v3/ra8875/rgb565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//
//		// Open SPI bus
//		spiBus, err := spireg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		// Create device and program the panel timings
//		dev, err := ra8875.NewSPI(spiBus, &ra8875.Opts{W: 800, H: 480})
//		if err != nil {
//			log.Fatal(err)
//		}
//		if err := dev.Init(true); err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		// Hardware-accelerated drawing
//		dev.Fill(rgb565.New(0, 0, 0))
//		dev.FillCircle(400, 240, 100, rgb565.New(255, 0, 0))
//
//		// Built-in text engine
//		dev.TxtSetCursor(10, 10)
//		dev.TxtColor(rgb565.New(255, 255, 255), rgb565.New(0, 0, 0))
//		dev.TxtWrite("Hello!")
//	}
//
// # Using Hardware Reset Pin (Optional)
//
// If the board's RST pin is connected to a GPIO, provide it in Opts for a
// clean hardware reset before initialization:
//
//	rstPin := gpioreg.ByName("GPIO25")
//
//	dev, _ := ra8875.NewSPI(spiBus, &ra8875.Opts{
//		W:   800,
//		H:   480,
//		RST: rstPin,
//	})
//
// The driver pulls RST low for 100ms, then high for 100ms. If RST is nil the
// driver relies on power-on reset; SoftReset is also available.
//
// # Drawing Completion
//
// Every accelerated drawing call writes a start bit and then polls the chip's
// busy status until the engine reports idle, bounded by a 20ms timeout. On
// timeout the call returns ErrDrawTimeout; the engine usually finishes on its
// own shortly after, so callers may treat the error as advisory:
//
//	if err := dev.FillRect(0, 0, 800, 480, c); err != nil && !errors.Is(err, ra8875.ErrDrawTimeout) {
//		log.Fatal(err)
//	}
//
// # Direct Memory Access
//
// Pixel, ReadPixel, PushPixels and SetActiveWindow bypass the drawing engine
// and move raw RGB565 data in and out of display memory. Draw implements
// periph.io's display.Drawer on top of them, with a fast path for
// *rgb565.Image sources:
//
//	img := rgb565.NewImage(dev.Bounds())
//	// ... fill img ...
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// The bmp subpackage streams 16/24/32-bit BMP files to the display scanline
// by scanline without buffering the whole image.
//
// # Touch Input
//
// The built-in digitizer reports raw 10-bit ADC coordinates; scaling to panel
// pixels is up to the caller. An interrupt GPIO is optional but makes
// Touched cheap:
//
//	if err := dev.TouchInit(intPin, true); err != nil {
//		log.Fatal(err)
//	}
//	for {
//		if ok, _ := dev.Touched(); ok {
//			x, y, _ := dev.TouchRead()
//			log.Printf("touch at %d,%d", x, y)
//		}
//	}
//
// # Concurrency
//
// The driver is synchronous and assumes a single owner: every bus transaction
// and completion poll runs to completion on the calling goroutine, and there
// is no internal locking. Concurrent callers must serialize access
// externally.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://cdn-shop.adafruit.com/datasheets/RA8875_DS_V19_Eng.pdf
package ra8875
