package ra8875

import (
	"periph.io/x/devices/v3/ra8875/rgb565"
)

// Every accelerated primitive follows the same protocol: write the shape's
// geometry registers (Y coordinates offset by the panel's vertical offset),
// write the packed color into the three channel registers, write the start
// command, then poll the matching status bit until the engine reports idle.

// Line draws a line from (x1,y1) to (x2,y2) (HW accelerated).
func (d *Dev) Line(x1, y1, x2, y2 int, c rgb565.RGB565) error {
	if err := d.checkXY(x1, y1); err != nil {
		return err
	}
	if err := d.checkXY(x2, y2); err != nil {
		return err
	}
	return d.lineHelper(x1, y1, x2, y2, c)
}

// HLine draws a horizontal line of the given width (HW accelerated).
func (d *Dev) HLine(x, y, width int, c rgb565.RGB565) error {
	return d.Line(x, y, x+width-1, y, c)
}

// VLine draws a vertical line of the given height (HW accelerated).
func (d *Dev) VLine(x, y, height int, c rgb565.RGB565) error {
	return d.Line(x, y, x, y+height-1, c)
}

// Rect draws a rectangle outline (HW accelerated). (x,y) is the top-left
// corner.
func (d *Dev) Rect(x, y, width, height int, c rgb565.RGB565) error {
	return d.boundedRect(x, y, width, height, c, false)
}

// FillRect draws a filled rectangle (HW accelerated). (x,y) is the top-left
// corner.
func (d *Dev) FillRect(x, y, width, height int, c rgb565.RGB565) error {
	return d.boundedRect(x, y, width, height, c, true)
}

// Fill fills the entire screen (HW accelerated).
func (d *Dev) Fill(c rgb565.RGB565) error {
	return d.rectHelper(0, 0, d.rect.Dx()-1, d.rect.Dy()-1, c, true)
}

// Circle draws a circle outline (HW accelerated).
func (d *Dev) Circle(x, y, radius int, c rgb565.RGB565) error {
	return d.boundedCircle(x, y, radius, c, false)
}

// FillCircle draws a filled circle (HW accelerated).
func (d *Dev) FillCircle(x, y, radius int, c rgb565.RGB565) error {
	return d.boundedCircle(x, y, radius, c, true)
}

// Ellipse draws an ellipse outline with the given axis lengths (HW
// accelerated).
func (d *Dev) Ellipse(x, y, hAxis, vAxis int, c rgb565.RGB565) error {
	return d.boundedEllipse(x, y, hAxis, vAxis, c, true, false, 0)
}

// FillEllipse draws a filled ellipse (HW accelerated).
func (d *Dev) FillEllipse(x, y, hAxis, vAxis int, c rgb565.RGB565) error {
	return d.boundedEllipse(x, y, hAxis, vAxis, c, true, true, 0)
}

// Curve draws one quarter of an ellipse centered on (x,y) (HW accelerated).
// quadrant selects the quarter: 0 bottom-left, 1 top-left, 2 top-right,
// 3 bottom-right.
func (d *Dev) Curve(x, y, hAxis, vAxis, quadrant int, c rgb565.RGB565) error {
	return d.boundedEllipse(x, y, hAxis, vAxis, c, false, false, quadrant)
}

// FillCurve draws a filled quarter-ellipse (HW accelerated). See Curve for
// the quadrant encoding.
func (d *Dev) FillCurve(x, y, hAxis, vAxis, quadrant int, c rgb565.RGB565) error {
	return d.boundedEllipse(x, y, hAxis, vAxis, c, false, true, quadrant)
}

// Triangle draws a triangle outline (HW accelerated).
func (d *Dev) Triangle(x1, y1, x2, y2, x3, y3 int, c rgb565.RGB565) error {
	return d.boundedTriangle(x1, y1, x2, y2, x3, y3, c, false)
}

// FillTriangle draws a filled triangle (HW accelerated).
func (d *Dev) FillTriangle(x1, y1, x2, y2, x3, y3 int, c rgb565.RGB565) error {
	return d.boundedTriangle(x1, y1, x2, y2, x3, y3, c, true)
}

// RoundRect draws a rounded rectangle outline. Rounded rectangles are not a
// chip primitive: the corners are four quarter-curves and the edges are
// hardware lines sharing the curves' boundary coordinates. The outline
// spans rows y through y+height.
func (d *Dev) RoundRect(x, y, width, height, radius int, c rgb565.RGB565) error {
	if err := d.checkXY(x, y); err != nil {
		return err
	}
	if err := d.checkXY(x+width-1, y+height); err != nil {
		return err
	}
	if err := d.gfxMode(); err != nil {
		return err
	}
	if err := d.curveHelper(x+radius, y+radius, radius, radius, 1, c, false); err != nil {
		return err
	}
	if err := d.curveHelper(x+width-radius-1, y+radius, radius, radius, 2, c, false); err != nil {
		return err
	}
	if err := d.curveHelper(x+radius, y+height-radius, radius, radius, 0, c, false); err != nil {
		return err
	}
	if err := d.curveHelper(x+width-radius-1, y+height-radius, radius, radius, 3, c, false); err != nil {
		return err
	}
	if err := d.lineHelper(x+radius, y, x+width-radius-2, y, c); err != nil {
		return err
	}
	if err := d.lineHelper(x+radius, y+height, x+width-radius-2, y+height, c); err != nil {
		return err
	}
	if err := d.lineHelper(x, y+radius, x, y+height-radius-1, c); err != nil {
		return err
	}
	return d.lineHelper(x+width-1, y+radius, x+width-1, y+height-radius-1, c)
}

// FillRoundRect draws a filled rounded rectangle: four filled
// quarter-curves plus two filled rectangles covering the straight regions.
func (d *Dev) FillRoundRect(x, y, width, height, radius int, c rgb565.RGB565) error {
	if err := d.checkXY(x, y); err != nil {
		return err
	}
	if err := d.checkXY(x+width-1, y+height); err != nil {
		return err
	}
	if err := d.gfxMode(); err != nil {
		return err
	}
	if err := d.curveHelper(x+radius, y+radius, radius, radius, 1, c, true); err != nil {
		return err
	}
	if err := d.curveHelper(x+width-radius-1, y+radius, radius, radius, 2, c, true); err != nil {
		return err
	}
	if err := d.curveHelper(x+radius, y+height-radius, radius, radius, 0, c, true); err != nil {
		return err
	}
	if err := d.curveHelper(x+width-radius-1, y+height-radius, radius, radius, 3, c, true); err != nil {
		return err
	}
	if err := d.rectHelper(x+radius, y, x+width-radius-1, y+height-1, c, true); err != nil {
		return err
	}
	return d.rectHelper(x, y+radius, x+width-1, y+height-radius-1, c, true)
}

// DrawCursor draws a two-color crosshair cursor centered on (x,y), pixel by
// pixel (not accelerated).
func (d *Dev) DrawCursor(x, y int, inside, outline rgb565.RGB565) error {
	for i := -4; i <= 4; i++ {
		if err := d.Pixel(x+i, y-4, outline); err != nil {
			return err
		}
		if err := d.Pixel(x+i, y+4, outline); err != nil {
			return err
		}
		if err := d.Pixel(x-4, y+i, outline); err != nil {
			return err
		}
		if err := d.Pixel(x+4, y+i, outline); err != nil {
			return err
		}
	}
	for i := -3; i <= 3; i++ {
		if err := d.Pixel(x+i, y, inside); err != nil {
			return err
		}
		if err := d.Pixel(x, y+i, inside); err != nil {
			return err
		}
	}
	return nil
}

// LightenMode enables the lighten transparency mode between display layers.
func (d *Dev) LightenMode() error {
	if err := d.gfxMode(); err != nil {
		return err
	}
	return d.writeReg(regLTPR0, 0x50)
}

func (d *Dev) boundedRect(x, y, width, height int, c rgb565.RGB565, filled bool) error {
	if err := d.checkXY(x, y); err != nil {
		return err
	}
	if err := d.checkXY(x+width-1, y+height-1); err != nil {
		return err
	}
	return d.rectHelper(x, y, x+width-1, y+height-1, c, filled)
}

func (d *Dev) boundedCircle(x, y, radius int, c rgb565.RGB565, filled bool) error {
	if err := d.checkXY(x-radius, y-radius); err != nil {
		return err
	}
	if err := d.checkXY(x+radius, y+radius); err != nil {
		return err
	}
	return d.circleHelper(x, y, radius, c, filled)
}

func (d *Dev) boundedEllipse(x, y, hAxis, vAxis int, c rgb565.RGB565, full, filled bool, quadrant int) error {
	if err := d.checkXY(x-hAxis, y-vAxis); err != nil {
		return err
	}
	if err := d.checkXY(x+hAxis, y+vAxis); err != nil {
		return err
	}
	if full {
		return d.ellipseHelper(x, y, hAxis, vAxis, c, filled)
	}
	return d.curveHelper(x, y, hAxis, vAxis, quadrant, c, filled)
}

func (d *Dev) boundedTriangle(x1, y1, x2, y2, x3, y3 int, c rgb565.RGB565, filled bool) error {
	if err := d.checkXY(x1, y1); err != nil {
		return err
	}
	if err := d.checkXY(x2, y2); err != nil {
		return err
	}
	if err := d.checkXY(x3, y3); err != nil {
		return err
	}
	return d.triangleHelper(x1, y1, x2, y2, x3, y3, c, filled)
}

func (d *Dev) lineHelper(x1, y1, x2, y2 int, c rgb565.RGB565) error {
	if err := d.gfxMode(); err != nil {
		return err
	}
	w := &regWriter{d: d}
	w.writeReg16(regDLHSR0, uint16(x1))
	w.writeReg16(regDLVSR0, uint16(y1+d.vertOffset))
	w.writeReg16(regDLHER0, uint16(x2))
	w.writeReg16(regDLVER0, uint16(y2+d.vertOffset))
	w.fgColor(c)
	w.writeReg(regDCR, 0x80)
	if w.err != nil {
		return w.err
	}
	return d.pollDraw(regDCR, dcrLineSqTriStatus)
}

func (d *Dev) rectHelper(x1, y1, x2, y2 int, c rgb565.RGB565, filled bool) error {
	if err := d.gfxMode(); err != nil {
		return err
	}
	w := &regWriter{d: d}
	w.writeReg16(regDLHSR0, uint16(x1))
	w.writeReg16(regDLVSR0, uint16(y1+d.vertOffset))
	w.writeReg16(regDLHER0, uint16(x2))
	w.writeReg16(regDLVER0, uint16(y2+d.vertOffset))
	w.fgColor(c)
	cmd := byte(0x90)
	if filled {
		cmd = 0xB0
	}
	w.writeReg(regDCR, cmd)
	if w.err != nil {
		return w.err
	}
	return d.pollDraw(regDCR, dcrLineSqTriStatus)
}

func (d *Dev) circleHelper(x, y, radius int, c rgb565.RGB565, filled bool) error {
	if err := d.gfxMode(); err != nil {
		return err
	}
	w := &regWriter{d: d}
	w.writeReg16(regDCHR0, uint16(x))
	w.writeReg16(regDCVR0, uint16(y+d.vertOffset))
	w.writeReg(regDCRR, byte(radius))
	w.fgColor(c)
	cmd := dcrCircStart | dcrNoFill
	if filled {
		cmd = dcrCircStart | dcrFill
	}
	w.writeReg(regDCR, cmd)
	if w.err != nil {
		return w.err
	}
	return d.pollDraw(regDCR, dcrCircStatus)
}

func (d *Dev) triangleHelper(x1, y1, x2, y2, x3, y3 int, c rgb565.RGB565, filled bool) error {
	if err := d.gfxMode(); err != nil {
		return err
	}
	w := &regWriter{d: d}
	w.writeReg16(regDLHSR0, uint16(x1))
	w.writeReg16(regDLVSR0, uint16(y1+d.vertOffset))
	w.writeReg16(regDLHER0, uint16(x2))
	w.writeReg16(regDLVER0, uint16(y2+d.vertOffset))
	w.writeReg16(regDTPH0, uint16(x3))
	w.writeReg16(regDTPV0, uint16(y3+d.vertOffset))
	w.fgColor(c)
	cmd := byte(0x81)
	if filled {
		cmd = 0xA1
	}
	w.writeReg(regDCR, cmd)
	if w.err != nil {
		return w.err
	}
	return d.pollDraw(regDCR, dcrLineSqTriStatus)
}

func (d *Dev) ellipseHelper(x, y, hAxis, vAxis int, c rgb565.RGB565, filled bool) error {
	if err := d.gfxMode(); err != nil {
		return err
	}
	w := &regWriter{d: d}
	w.writeReg16(regDEHR0, uint16(x))
	w.writeReg16(regDEVR0, uint16(y+d.vertOffset))
	w.writeReg16(regELLA0, uint16(hAxis))
	w.writeReg16(regELLB0, uint16(vAxis))
	w.fgColor(c)
	cmd := byte(0x80)
	if filled {
		cmd = 0xC0
	}
	w.writeReg(regEllipse, cmd)
	if w.err != nil {
		return w.err
	}
	return d.pollDraw(regEllipse, ellipseStatus)
}

// curveHelper draws a quarter-ellipse. The 2-bit quadrant selector is
// packed into the low bits of the start command.
func (d *Dev) curveHelper(x, y, hAxis, vAxis, quadrant int, c rgb565.RGB565, filled bool) error {
	if err := d.gfxMode(); err != nil {
		return err
	}
	w := &regWriter{d: d}
	w.writeReg16(regDEHR0, uint16(x))
	w.writeReg16(regDEVR0, uint16(y+d.vertOffset))
	w.writeReg16(regELLA0, uint16(hAxis))
	w.writeReg16(regELLB0, uint16(vAxis))
	w.fgColor(c)
	cmd := byte(0x90)
	if filled {
		cmd = 0xD0
	}
	w.writeReg(regEllipse, cmd|byte(quadrant&0x03))
	if w.err != nil {
		return w.err
	}
	return d.pollDraw(regEllipse, ellipseStatus)
}
