// Package bmp reads raw BMP containers and blits them to an RA8875 display.
//
// Unlike a general-purpose image decoder, this package keeps the file's raw
// scanline layout: rows are converted to RGB565 one at a time and streamed
// in the file's bottom-to-top order, so a full-screen image never needs to
// be held in memory. Supported source depths are 16-bit (5-5-5), 24-bit and
// 32-bit.
package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"periph.io/x/devices/v3/ra8875/rgb565"
)

// headerSize is the BITMAPFILEHEADER plus the BITMAPINFOHEADER.
const headerSize = 54

// Display is the subset of the display driver used to blit decoded rows.
// *ra8875.Dev implements it.
type Display interface {
	Bounds() image.Rectangle
	SetActiveWindow(x, y, width, height int) error
	SetXY(x, y int) error
	PushPixels(pix []byte) error
}

// File is an open BMP container.
type File struct {
	Width  int
	Height int
	// BitsPerPixel is the source pixel depth: 16, 24 or 32.
	BitsPerPixel int

	r          io.ReadSeeker
	dataOffset uint32
}

// Open opens a BMP file and parses its header. The caller owns the returned
// File and must Close it.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bmp: %w", err)
	}
	b, err := New(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return b, nil
}

// New parses a BMP header from r. r must stay valid for the lifetime of the
// returned File.
func New(r io.ReadSeeker) (*File, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("bmp: short header: %w", err)
	}
	if hdr[0] != 'B' || hdr[1] != 'M' {
		return nil, errors.New("bmp: not a BMP file")
	}
	f := &File{
		Width:        int(int32(binary.LittleEndian.Uint32(hdr[18:22]))),
		Height:       int(int32(binary.LittleEndian.Uint32(hdr[22:26]))),
		BitsPerPixel: int(binary.LittleEndian.Uint16(hdr[28:30])),
		r:            r,
		dataOffset:   binary.LittleEndian.Uint32(hdr[10:14]),
	}
	switch f.BitsPerPixel {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("bmp: unsupported bit depth %d", f.BitsPerPixel)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("bmp: unsupported dimensions %dx%d", f.Width, f.Height)
	}
	return f, nil
}

// Close closes the underlying reader if it is closable.
func (f *File) Close() error {
	if c, ok := f.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Draw blits the image to the display with its top-left corner at (x, y).
// The active window is set around the image for the duration of the blit
// and restored to the full panel afterwards. Rows are streamed in file
// order, bottom to top.
func (f *File) Draw(d Display, x, y int) error {
	bounds := d.Bounds()
	if x < 0 || y < 0 || x+f.Width > bounds.Dx() || y+f.Height > bounds.Dy() {
		return fmt.Errorf("bmp: %dx%d image at (%d,%d) exceeds %dx%d display",
			f.Width, f.Height, x, y, bounds.Dx(), bounds.Dy())
	}

	if _, err := f.r.Seek(int64(f.dataOffset), io.SeekStart); err != nil {
		return fmt.Errorf("bmp: %w", err)
	}

	if err := d.SetActiveWindow(x, y, f.Width, f.Height); err != nil {
		return err
	}

	bpp := f.BitsPerPixel / 8
	// BMP rows are padded to 4-byte boundaries.
	stride := (f.Width*bpp + 3) &^ 3
	raw := make([]byte, stride)
	row := make([]byte, f.Width*2)

	// Row 0 in the file is the bottom scanline of the image.
	for i := 0; i < f.Height; i++ {
		if _, err := io.ReadFull(f.r, raw); err != nil {
			return fmt.Errorf("bmp: short scanline %d: %w", i, err)
		}
		convertRow(row, raw, f.Width, bpp)
		if err := d.SetXY(x, y+f.Height-1-i); err != nil {
			return err
		}
		if err := d.PushPixels(row); err != nil {
			return err
		}
	}

	return d.SetActiveWindow(0, 0, bounds.Dx(), bounds.Dy())
}

// convertRow converts one raw scanline to big-endian RGB565. 16-bit sources
// are 5-5-5 packed; 24 and 32-bit sources store channels in BGR order.
func convertRow(dst, src []byte, width, bpp int) {
	for i := 0; i < width; i++ {
		var c rgb565.RGB565
		o := i * bpp
		switch bpp {
		case 2:
			c = rgb565.From555(uint16(src[o]) | uint16(src[o+1])<<8)
		default:
			c = rgb565.New(src[o+2], src[o+1], src[o])
		}
		dst[2*i] = byte(c >> 8)
		dst[2*i+1] = byte(c)
	}
}
