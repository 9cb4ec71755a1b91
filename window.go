package ra8875

import (
	"image"

	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ra8875/rgb565"
)

// SetXY positions the memory write cursor for direct framebuffer access.
func (d *Dev) SetXY(x, y int) error {
	if err := d.checkXY(x, y); err != nil {
		return err
	}
	if err := d.gfxMode(); err != nil {
		return err
	}
	w := &regWriter{d: d}
	w.writeReg16(regCURH0, uint16(x))
	w.writeReg16(regCURV0, uint16(y+d.vertOffset))
	return w.err
}

// Pixel writes a single pixel, bypassing the drawing engine.
func (d *Dev) Pixel(x, y int, c rgb565.RGB565) error {
	if err := d.SetXY(x, y); err != nil {
		return err
	}
	if err := d.writeCmd(regMRWC); err != nil {
		return err
	}
	return d.writeDataRaw([]byte{byte(c >> 8), byte(c)})
}

// ReadPixel reads a single pixel back from display memory.
func (d *Dev) ReadPixel(x, y int) (rgb565.RGB565, error) {
	if err := d.checkXY(x, y); err != nil {
		return 0, err
	}
	if err := d.gfxMode(); err != nil {
		return 0, err
	}
	w := &regWriter{d: d}
	w.writeReg16(regRCURH0, uint16(x))
	w.writeReg16(regRCURV0, uint16(y+d.vertOffset))
	if w.err != nil {
		return 0, w.err
	}
	if err := d.writeCmd(regMRWC); err != nil {
		return 0, err
	}
	// The first word out of the read port is stale.
	if _, err := d.readData16(); err != nil {
		return 0, err
	}
	v, err := d.readData16()
	if err != nil {
		return 0, err
	}
	return rgb565.RGB565(v), nil
}

// PushPixels streams raw big-endian RGB565 pixel data into display memory
// at the current write cursor, wrapping inside the active window.
func (d *Dev) PushPixels(pix []byte) error {
	if err := d.gfxMode(); err != nil {
		return err
	}
	if err := d.writeCmd(regMRWC); err != nil {
		return err
	}
	// Chunk to the connection's transfer limit; the chip treats each data
	// frame as a continuation of the same memory write.
	chunk := d.maxTx - 1
	for len(pix) > 0 {
		n := len(pix)
		if n > chunk {
			n = chunk
		}
		if err := d.writeDataRaw(pix[:n]); err != nil {
			return err
		}
		pix = pix[n:]
	}
	return nil
}

// SetActiveWindow restricts pixel-streaming operations to a rectangular
// sub-region of display memory. Width and height are clamped so the window
// never exceeds the panel bounds.
func (d *Dev) SetActiveWindow(x, y, width, height int) error {
	if err := d.checkXY(x, y); err != nil {
		return err
	}
	width, height = d.clampWindow(x, y, width, height)
	if err := d.gfxMode(); err != nil {
		return err
	}
	w := &regWriter{d: d}
	w.writeReg16(regHSAW0, uint16(x))
	w.writeReg16(regHEAW0, uint16(x+width-1))
	w.writeReg16(regVSAW0, uint16(y+d.vertOffset))
	w.writeReg16(regVEAW0, uint16(y+height-1+d.vertOffset))
	return w.err
}

// SetWindow sets an active drawing window and pre-fills it with a rectangle
// of the given color, for use with PushPixels.
func (d *Dev) SetWindow(x, y, width, height int, c rgb565.RGB565, filled bool) error {
	if err := d.checkXY(x, y); err != nil {
		return err
	}
	width, height = d.clampWindow(x, y, width, height)
	if err := d.SetActiveWindow(x, y, width, height); err != nil {
		return err
	}
	return d.rectHelper(x, y, x+width-1, y+height-1, c, filled)
}

// clampWindow limits a window's width and height to the panel bounds.
func (d *Dev) clampWindow(x, y, width, height int) (int, int) {
	if x+width >= d.rect.Dx() {
		width = d.rect.Dx() - x
	}
	if y+height >= d.rect.Dy() {
		height = d.rect.Dy() - y
	}
	return width, height
}

// Draw draws an image onto the display by streaming RGB565 rows through the
// active window. It implements display.Drawer.
//
// The dst rectangle specifies the destination region on the display; sp is
// the top-left point in src to start copying from.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	if err := d.SetActiveWindow(dst.Min.X, dst.Min.Y, dst.Dx(), dst.Dy()); err != nil {
		return err
	}
	if err := d.SetXY(dst.Min.X, dst.Min.Y); err != nil {
		return err
	}

	// Fast path: native format rows can be streamed as-is.
	if img, ok := src.(*rgb565.Image); ok && sp == img.Rect.Min && dst.Dx()*2 == img.Stride && dst.Dy() <= img.Rect.Dy() {
		for y := 0; y < dst.Dy(); y++ {
			if err := d.PushPixels(img.Row(img.Rect.Min.Y + y)); err != nil {
				return err
			}
		}
		return d.restoreWindow()
	}

	row := make([]byte, dst.Dx()*2)
	for y := 0; y < dst.Dy(); y++ {
		for x := 0; x < dst.Dx(); x++ {
			c := rgb565.Model.Convert(src.At(sp.X+x, sp.Y+y)).(rgb565.RGB565)
			row[2*x] = byte(c >> 8)
			row[2*x+1] = byte(c)
		}
		if err := d.PushPixels(row); err != nil {
			return err
		}
	}
	return d.restoreWindow()
}

// restoreWindow resets the active window to the full panel.
func (d *Dev) restoreWindow() error {
	return d.SetActiveWindow(0, 0, d.rect.Dx(), d.rect.Dy())
}

var _ display.Drawer = &Dev{}
