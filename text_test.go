package ra8875

import (
	"testing"

	"periph.io/x/conn/v3/conntest"
	"periph.io/x/devices/v3/ra8875/rgb565"
)

// textTestDev builds a device with the text mode already cached.
func textTestDev(pb *conntest.Playback) *Dev {
	d := newTestDev(pb, 800, 480)
	d.mode = modeText
	return d
}

func TestTxtSetCursor(t *testing.T) {
	pb := &conntest.Playback{
		Ops:       join(ioWR16(regTxtCurX, 100), ioWR16(regTxtCurY, 50)),
		DontPanic: true,
	}
	d := textTestDev(pb)
	if err := d.TxtSetCursor(100, 50); err != nil {
		t.Fatal(err)
	}
	checkPlayback(t, pb)
}

func TestTxtSetCursorVertOffset(t *testing.T) {
	pb := &conntest.Playback{
		Ops:       join(ioWR16(regTxtCurX, 10), ioWR16(regTxtCurY, 200)),
		DontPanic: true,
	}
	d := newTestDev(pb, 480, 82)
	d.mode = modeText
	if err := d.TxtSetCursor(10, 10); err != nil {
		t.Fatal(err)
	}
	checkPlayback(t, pb)
}

func TestTxtColor(t *testing.T) {
	fg := rgb565.RGB565(0xFFFF)
	bg := rgb565.RGB565(0x0000)
	ops := join(
		ioFG(fg),
		ioWR(regBGCR0, 0x00),
		ioWR(regBGCR1, 0x00),
		ioWR(regBGCR2, 0x00),
		// Transparent-background bit cleared.
		ioRD(regFNCR1, 0x40),
		[]conntest.IO{{W: []byte{dataWrite, 0x00}}},
	)
	pb := &conntest.Playback{Ops: ops, DontPanic: true}
	d := textTestDev(pb)
	if err := d.TxtColor(fg, bg); err != nil {
		t.Fatal(err)
	}
	checkPlayback(t, pb)
}

func TestTxtTransparent(t *testing.T) {
	fg := rgb565.RGB565(0x07E0)
	ops := join(
		ioFG(fg),
		ioRD(regFNCR1, 0x00),
		[]conntest.IO{{W: []byte{dataWrite, 0x40}}},
	)
	pb := &conntest.Playback{Ops: ops, DontPanic: true}
	d := textTestDev(pb)
	if err := d.TxtTransparent(fg); err != nil {
		t.Fatal(err)
	}
	checkPlayback(t, pb)
}

func TestTxtSize(t *testing.T) {
	tests := []struct {
		scale     int
		prev      byte
		want      byte
		wantScale int
	}{
		{0, 0x0F, 0x00, 0},
		{1, 0x00, 0x05, 1},
		{3, 0x00, 0x0F, 3},
		{5, 0x00, 0x0F, 3},  // clamped high
		{-1, 0x0F, 0x00, 0}, // clamped low
		{2, 0x40, 0x4A, 2},  // upper bits preserved
	}
	for _, tt := range tests {
		ops := join(
			ioRD(regFNCR1, tt.prev),
			[]conntest.IO{{W: []byte{dataWrite, tt.want}}},
		)
		pb := &conntest.Playback{Ops: ops, DontPanic: true}
		d := textTestDev(pb)
		if err := d.TxtSize(tt.scale); err != nil {
			t.Fatal(err)
		}
		if d.txtScale != tt.wantScale {
			t.Errorf("TxtSize(%d): txtScale = %d, want %d", tt.scale, d.txtScale, tt.wantScale)
		}
		checkPlayback(t, pb)
	}
}

func TestTxtWrite(t *testing.T) {
	ops := []conntest.IO{
		{W: []byte{cmdWrite, regMRWC}},
		{W: []byte{dataWrite, 'H'}},
		{W: []byte{dataWrite, 'i'}},
		{W: []byte{dataWrite, '!'}},
	}
	pb := &conntest.Playback{Ops: ops, DontPanic: true}
	d := textTestDev(pb)
	if err := d.TxtWrite("Hi!"); err != nil {
		t.Fatal(err)
	}
	checkPlayback(t, pb)
}

func TestTxtWriteFromGraphicsMode(t *testing.T) {
	// Writing text from graphics mode switches modes first.
	ops := join(
		ioRD(regMWCR0, 0x00),
		[]conntest.IO{{W: []byte{dataWrite, mwcr0TxtMode}}},
		ioRD(regFNCR0, 0x00),
		[]conntest.IO{
			{W: []byte{dataWrite, 0x00}},
			{W: []byte{cmdWrite, regMRWC}},
			{W: []byte{dataWrite, 'A'}},
		},
	)
	pb := &conntest.Playback{Ops: ops, DontPanic: true}
	d := newTestDev(pb, 800, 480)
	if err := d.TxtWrite("A"); err != nil {
		t.Fatal(err)
	}
	checkPlayback(t, pb)
}
