package bmp

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	xbmp "golang.org/x/image/bmp"
)

// fakeDisplay records the blit traffic a Draw call produces.
type fakeDisplay struct {
	w, h    int
	windows []image.Rectangle
	moves   []image.Point
	rows    [][]byte
}

func (f *fakeDisplay) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.w, f.h)
}

func (f *fakeDisplay) SetActiveWindow(x, y, width, height int) error {
	f.windows = append(f.windows, image.Rect(x, y, x+width, y+height))
	return nil
}

func (f *fakeDisplay) SetXY(x, y int) error {
	f.moves = append(f.moves, image.Pt(x, y))
	return nil
}

func (f *fakeDisplay) PushPixels(pix []byte) error {
	f.rows = append(f.rows, append([]byte(nil), pix...))
	return nil
}

// encodeFixture renders an opaque image to BMP bytes.
func encodeFixture(t *testing.T, m image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := xbmp.Encode(&buf, m); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func testImage() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, 3, 2))
	m.Set(0, 0, color.RGBA{R: 255, A: 255})
	m.Set(1, 0, color.RGBA{G: 255, A: 255})
	m.Set(2, 0, color.RGBA{B: 255, A: 255})
	m.Set(0, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	m.Set(1, 1, color.RGBA{A: 255})
	m.Set(2, 1, color.RGBA{R: 255, G: 255, A: 255})
	return m
}

func TestNew(t *testing.T) {
	raw := encodeFixture(t, testImage())
	f, err := New(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if f.Width != 3 || f.Height != 2 {
		t.Errorf("dimensions = %dx%d, want 3x2", f.Width, f.Height)
	}
	if f.BitsPerPixel != 24 && f.BitsPerPixel != 32 {
		t.Errorf("BitsPerPixel = %d, want 24 or 32", f.BitsPerPixel)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"short header", []byte("BM")},
		{"bad magic", bytes.Repeat([]byte{'X'}, headerSize)},
		{"8-bit depth", header8bpp()},
		{"zero width", headerZeroWidth()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(bytes.NewReader(tt.raw)); err == nil {
				t.Error("expected error but didn't get one")
			}
		})
	}
}

func header8bpp() []byte {
	hdr := validHeader(2, 2, 16)
	binary.LittleEndian.PutUint16(hdr[28:], 8)
	return hdr
}

func headerZeroWidth() []byte {
	hdr := validHeader(2, 2, 16)
	binary.LittleEndian.PutUint32(hdr[18:], 0)
	return hdr
}

// validHeader builds a minimal BITMAPFILEHEADER + BITMAPINFOHEADER.
func validHeader(width, height, bpp int) []byte {
	hdr := make([]byte, headerSize)
	hdr[0] = 'B'
	hdr[1] = 'M'
	binary.LittleEndian.PutUint32(hdr[10:], headerSize)
	binary.LittleEndian.PutUint32(hdr[14:], 40)
	binary.LittleEndian.PutUint32(hdr[18:], uint32(width))
	binary.LittleEndian.PutUint32(hdr[22:], uint32(height))
	binary.LittleEndian.PutUint16(hdr[26:], 1)
	binary.LittleEndian.PutUint16(hdr[28:], uint16(bpp))
	return hdr
}

func TestDraw(t *testing.T) {
	raw := encodeFixture(t, testImage())
	f, err := New(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	d := &fakeDisplay{w: 800, h: 480}
	if err := f.Draw(d, 10, 20); err != nil {
		t.Fatal(err)
	}

	// The window brackets the image during the blit and is restored to the
	// full panel afterwards.
	wantWindows := []image.Rectangle{
		image.Rect(10, 20, 13, 22),
		image.Rect(0, 0, 800, 480),
	}
	if len(d.windows) != len(wantWindows) {
		t.Fatalf("window changes = %d, want %d", len(d.windows), len(wantWindows))
	}
	for i, want := range wantWindows {
		if d.windows[i] != want {
			t.Errorf("window %d = %v, want %v", i, d.windows[i], want)
		}
	}

	// File rows are bottom-to-top: the first pushed row lands on the last
	// display row.
	wantMoves := []image.Point{{X: 10, Y: 21}, {X: 10, Y: 20}}
	if len(d.moves) != len(wantMoves) {
		t.Fatalf("cursor moves = %d, want %d", len(d.moves), len(wantMoves))
	}
	for i, want := range wantMoves {
		if d.moves[i] != want {
			t.Errorf("move %d = %v, want %v", i, d.moves[i], want)
		}
	}

	wantRows := [][]byte{
		{0xFF, 0xFF, 0x00, 0x00, 0xFF, 0xE0}, // white, black, yellow
		{0xF8, 0x00, 0x07, 0xE0, 0x00, 0x1F}, // red, green, blue
	}
	if len(d.rows) != len(wantRows) {
		t.Fatalf("rows pushed = %d, want %d", len(d.rows), len(wantRows))
	}
	for i, want := range wantRows {
		if !bytes.Equal(d.rows[i], want) {
			t.Errorf("row %d = % 02x, want % 02x", i, d.rows[i], want)
		}
	}
}

func TestDrawBoundsCheck(t *testing.T) {
	raw := encodeFixture(t, testImage())
	f, err := New(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	d := &fakeDisplay{w: 800, h: 480}
	tests := []struct{ x, y int }{
		{-1, 0},
		{0, -1},
		{798, 0},
		{0, 479},
	}
	for _, tt := range tests {
		if err := f.Draw(d, tt.x, tt.y); err == nil {
			t.Errorf("Draw(%d, %d) should have failed", tt.x, tt.y)
		}
	}
	if len(d.rows) != 0 {
		t.Error("rejected draws must not push pixels")
	}
}

func TestDraw16bpp(t *testing.T) {
	// 5-5-5 packed pixels with red in the low bits.
	raw := validHeader(2, 1, 16)
	pix := make([]byte, 4)
	binary.LittleEndian.PutUint16(pix[0:], 0x001F) // red
	binary.LittleEndian.PutUint16(pix[2:], 0x7C00) // blue
	raw = append(raw, pix...)

	f, err := New(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if f.BitsPerPixel != 16 {
		t.Fatalf("BitsPerPixel = %d, want 16", f.BitsPerPixel)
	}

	d := &fakeDisplay{w: 800, h: 480}
	if err := f.Draw(d, 0, 0); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xF8, 0x00, 0x00, 0x1F}
	if len(d.rows) != 1 || !bytes.Equal(d.rows[0], want) {
		t.Errorf("rows = % 02x, want % 02x", d.rows, want)
	}
}

func TestDrawRowPadding(t *testing.T) {
	// A 1-pixel wide 24bpp row is 3 bytes of data padded to 4.
	raw := validHeader(1, 2, 24)
	raw = append(raw,
		0x00, 0x00, 0xFF, 0x00, // bottom row: red, 1 pad byte
		0xFF, 0x00, 0x00, 0x00, // top row: blue, 1 pad byte
	)

	f, err := New(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}

	d := &fakeDisplay{w: 800, h: 480}
	if err := f.Draw(d, 0, 0); err != nil {
		t.Fatal(err)
	}
	wantRows := [][]byte{
		{0xF8, 0x00}, // red, bottom of the image
		{0x00, 0x1F}, // blue
	}
	if len(d.rows) != len(wantRows) {
		t.Fatalf("rows pushed = %d, want %d", len(d.rows), len(wantRows))
	}
	for i, want := range wantRows {
		if !bytes.Equal(d.rows[i], want) {
			t.Errorf("row %d = % 02x, want % 02x", i, d.rows[i], want)
		}
	}
}

func TestOpen(t *testing.T) {
	raw := encodeFixture(t, testImage())
	path := filepath.Join(t.TempDir(), "fixture.bmp")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != 3 || f.Height != 2 {
		t.Errorf("dimensions = %dx%d, want 3x2", f.Width, f.Height)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.bmp")); err == nil {
		t.Error("expected error for missing file")
	}
}
