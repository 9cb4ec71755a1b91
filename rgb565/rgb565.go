package rgb565

import (
	"image"
	"image/color"
)

// RGB565 is a 16-bit color with 5 bits red, 6 bits green and 5 bits blue.
type RGB565 uint16

// New packs 8-bit red, green and blue channels into an RGB565 value.
// The conversion is lossy: the low 3 (red, blue) or 2 (green) bits of each
// channel are dropped.
func New(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// From555 converts a 16-bit 5-5-5 packed color, as stored in 16-bit BMP
// files (blue in the high bits), to RGB565. Each 5-bit field is widened to
// an 8-bit channel by a plain left shift before repacking, so the green
// channel keeps its least significant bit clear.
func From555(v uint16) RGB565 {
	r := uint8(v&0x1F) << 3
	g := uint8((v>>5)&0x1F) << 2
	b := uint8((v>>10)&0x1F) << 3
	return New(r, g, b)
}

// RGBA implements color.Color. The 5/6/5 fields are scaled to 16-bit
// channels by bit replication.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

// toRGB565 converts any color.Color to RGB565.
func toRGB565(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return New(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Model converts colors to RGB565.
var Model = color.ModelFunc(toRGB565)

// Image is an in-memory image in big-endian RGB565 format. Pix holds two
// bytes per pixel, most significant byte first, so a row can be streamed to
// the display memory write port without conversion.
type Image struct {
	Pix    []byte          // Pixel data (2 bytes per pixel, big-endian)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new RGB565 image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	stride := w * 2
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the RGB565 color of the pixel at (x, y).
func (p *Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	o := p.pixOffset(x, y)
	return RGB565(uint16(p.Pix[o])<<8 | uint16(p.Pix[o+1]))
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, Model.Convert(c).(RGB565))
}

// SetRGB565 sets the RGB565 color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	o := p.pixOffset(x, y)
	p.Pix[o] = byte(c >> 8)
	p.Pix[o+1] = byte(c)
}

// Row returns the raw bytes of row y, ready to stream to the display.
func (p *Image) Row(y int) []byte {
	o := (y - p.Rect.Min.Y) * p.Stride
	return p.Pix[o : o+p.Stride]
}

// pixOffset returns the byte offset for the pixel at (x, y).
func (p *Image) pixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
