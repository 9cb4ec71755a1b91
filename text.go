package ra8875

import (
	"time"

	"periph.io/x/devices/v3/ra8875/rgb565"
)

// TxtSetCursor positions the text cursor.
func (d *Dev) TxtSetCursor(x, y int) error {
	if err := d.checkXY(x, y); err != nil {
		return err
	}
	if err := d.txtMode(); err != nil {
		return err
	}
	w := &regWriter{d: d}
	w.writeReg16(regTxtCurX, uint16(x))
	w.writeReg16(regTxtCurY, uint16(y+d.vertOffset))
	return w.err
}

// TxtColor sets the text foreground and background colors.
func (d *Dev) TxtColor(fg, bg rgb565.RGB565) error {
	if err := d.txtMode(); err != nil {
		return err
	}
	w := &regWriter{d: d}
	w.fgColor(fg)
	w.bgColor(bg)
	if w.err != nil {
		return w.err
	}
	// Clear the transparent-background bit.
	v, err := d.readReg(regFNCR1)
	if err != nil {
		return err
	}
	return d.writeData(v &^ (1 << 6))
}

// TxtTransparent sets the text foreground color with a transparent
// background.
func (d *Dev) TxtTransparent(c rgb565.RGB565) error {
	if err := d.txtMode(); err != nil {
		return err
	}
	w := &regWriter{d: d}
	w.fgColor(c)
	if w.err != nil {
		return w.err
	}
	v, err := d.readReg(regFNCR1)
	if err != nil {
		return err
	}
	return d.writeData(v | 1<<6)
}

// TxtSize sets the text scale (0-3). Both axes are scaled by the same
// factor; values above 3 are clamped.
func (d *Dev) TxtSize(scale int) error {
	if err := d.txtMode(); err != nil {
		return err
	}
	if scale > 3 {
		scale = 3
	}
	if scale < 0 {
		scale = 0
	}
	v, err := d.readReg(regFNCR1)
	if err != nil {
		return err
	}
	if err := d.writeData(v&^0xF | byte(scale)<<2 | byte(scale)); err != nil {
		return err
	}
	d.txtScale = scale
	return nil
}

// TxtWrite renders a string at the current text cursor using the chip's
// built-in text engine. Characters are passed through as raw bytes; the
// internal font covers ISO 8859-1.
func (d *Dev) TxtWrite(s string) error {
	if err := d.txtMode(); err != nil {
		return err
	}
	if err := d.writeCmd(regMRWC); err != nil {
		return err
	}
	for i := 0; i < len(s); i++ {
		if err := d.writeData(s[i]); err != nil {
			return err
		}
		if d.txtScale > 0 {
			// Scaled glyphs take the engine longer than a byte time.
			time.Sleep(time.Millisecond)
		}
	}
	return nil
}
