package ra8875

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ra8875/rgb565"
)

// ErrDrawTimeout is returned by drawing operations when the drawing engine
// did not report completion within the poll timeout. The engine may still
// finish on its own; callers that prefer the best-effort behavior of the
// reference drivers can test for this error and continue. Note that until
// the busy bit clears, the geometry registers belong to the running
// operation and a subsequent draw may race it.
var ErrDrawTimeout = errors.New("ra8875: drawing engine timeout")

// drawTimeout bounds the completion poll of every accelerated drawing call.
const drawTimeout = 20 * time.Millisecond

// pollInterval spaces consecutive status reads to bound bus traffic while
// the drawing engine is busy.
const pollInterval = time.Millisecond

// Opts is the configuration for the RA8875 display.
type Opts struct {
	// Display dimensions in pixels. Supported sizes: 800x480, 480x272,
	// 480x128 and 480x80 (sold as 480x80, addressable as 480x82).
	W int // Width (default: 800)
	H int // Height (default: 480)

	// Freq is the SPI clock rate. Defaults to 6MHz; the chip tops out
	// around 12MHz for writes.
	Freq physic.Frequency

	// Optional hardware reset pin.
	RST gpio.PinIO
}

// panelProfile is the set of timing constants for one supported panel
// geometry. Horizontal values are in pixel clocks, vertical values in lines.
type panelProfile struct {
	w, h         int
	pixclk       byte
	hsyncNondisp int
	hsyncStart   int
	hsyncPW      int
	vsyncNondisp int
	vsyncStart   int
	vsyncPW      int
	adcClk       byte
	vertOffset   int
}

// panelProfiles holds exactly one profile per supported (width, height)
// pair.
var panelProfiles = []panelProfile{
	{
		w: 800, h: 480,
		pixclk:       pcsrPDatL | pcsr2Clk,
		hsyncNondisp: 26, hsyncStart: 32, hsyncPW: 96,
		vsyncNondisp: 32, vsyncStart: 23, vsyncPW: 2,
		adcClk: tpcr0ADCClkDiv16,
	},
	{
		w: 480, h: 272,
		pixclk:       pcsrPDatL | pcsr4Clk,
		hsyncNondisp: 10, hsyncStart: 8, hsyncPW: 48,
		vsyncNondisp: 3, vsyncStart: 8, vsyncPW: 10,
		adcClk: tpcr0ADCClkDiv4,
	},
	{
		w: 480, h: 128,
		pixclk:       pcsrPDatL | pcsr4Clk,
		hsyncNondisp: 10, hsyncStart: 8, hsyncPW: 48,
		vsyncNondisp: 3, vsyncStart: 8, vsyncPW: 10,
		adcClk: tpcr0ADCClkDiv4,
	},
	{
		// Sold as 480x80; the panel addresses 82 lines, offset 190 into
		// display memory.
		w: 480, h: 82,
		pixclk:       pcsrPDatL | pcsr4Clk,
		hsyncNondisp: 10, hsyncStart: 8, hsyncPW: 48,
		vsyncNondisp: 3, vsyncStart: 8, vsyncPW: 10,
		adcClk:     tpcr0ADCClkDiv4,
		vertOffset: 190,
	},
}

// profileFor returns the timing profile matching the requested panel size.
func profileFor(w, h int) (panelProfile, bool) {
	for _, p := range panelProfiles {
		if p.w == w && p.h == h {
			return p, true
		}
	}
	return panelProfile{}, false
}

// mode is the chip's memory write interpretation state.
type mode uint8

const (
	modeUnknown mode = iota
	modeGraphics
	modeText
)

// Dev is the device handle for the RA8875 display.
type Dev struct {
	// Communication
	c    conn.Conn  // SPI connection
	rst  gpio.PinIO // Reset pin (optional)
	tpin gpio.PinIO // Touch interrupt pin (optional)

	// Display geometry
	rect       image.Rectangle
	vertOffset int // Lines between addressable and visible memory
	profile    panelProfile

	// State
	mode     mode
	txtScale int
	adcClk   byte

	// Largest single transfer the SPI connection accepts.
	maxTx int
}

// NewSPI creates a new RA8875 device connected via SPI.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers at
// opts.Freq (default 6MHz). If a reset pin is provided, a hardware reset is
// performed; the chip registers are not programmed until Init is called.
//
// opts can be nil to use defaults (800x480 display).
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 800, H: 480}
	}

	w, h := opts.W, opts.H
	if w == 480 && h == 80 {
		h = 82
	}
	profile, ok := profileFor(w, h)
	if !ok {
		return nil, fmt.Errorf("ra8875: unsupported display size %dx%d", opts.W, opts.H)
	}

	f := opts.Freq
	if f == 0 {
		f = 6 * physic.MegaHertz
	}
	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	d := &Dev{
		c:          c,
		rst:        opts.RST,
		rect:       image.Rect(0, 0, w, h),
		vertOffset: profile.vertOffset,
		profile:    profile,
		adcClk:     profile.adcClk,
		maxTx:      4096,
	}
	if lim, ok := c.(conn.Limits); ok {
		if m := lim.MaxTxSize(); m > 0 {
			d.maxTx = m
		}
	}

	if d.rst != nil {
		if err := d.reset(); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// reset performs a hard reset through the reset pin.
func (d *Dev) reset() error {
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("ra8875: failed to pull RST low: %w", err)
	}
	time.Sleep(100 * time.Millisecond)

	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("ra8875: failed to pull RST high: %w", err)
	}
	time.Sleep(100 * time.Millisecond)
	return nil
}

// Init programs the timing registers for the configured panel geometry,
// clears display memory, and sets up the backlight at full brightness.
// startOn selects whether the panel is left on afterwards.
func (d *Dev) Init(startOn bool) error {
	p := d.profile
	w := &regWriter{d: d}

	// PLL first; each write needs 1ms for the PLL to lock.
	w.writeReg(regPLLC1, pllc1PLLDiv1+11)
	w.sleep(time.Millisecond)
	w.writeReg(regPLLC2, pllc2Div4)
	w.sleep(time.Millisecond)

	// 16 bits per pixel over the 8-bit MCU bus, then the pixel clock.
	w.writeReg(regSYSR, sysr16BPP|sysrMCU8)
	w.writeReg(regPCSR, p.pixclk)
	w.sleep(time.Millisecond)

	// Horizontal timing, in units of 8 pixel clocks.
	w.writeReg(regHDWR, byte(p.w/8-1))
	w.writeReg(regHNDFTR, hndftrDEHigh)
	w.writeReg(regHNDR, byte((p.hsyncNondisp-2)/8))
	w.writeReg(regHSTR, byte(p.hsyncStart/8-1))
	w.writeReg(regHPWR, hpwrLow+byte(p.hsyncPW/8-1))

	// Vertical timing, in lines.
	w.writeReg16(regVDHR0, uint16(p.h-1+d.vertOffset))
	w.writeReg16(regVNDR0, uint16(p.vsyncNondisp-1))
	w.writeReg16(regVSTR0, uint16(p.vsyncStart-1))
	w.writeReg(regVPWR, vpwrLow+byte(p.vsyncPW-1))

	// Active window over the full addressable area.
	w.writeReg16(regHSAW0, 0)
	w.writeReg16(regHEAW0, uint16(p.w-1))
	w.writeReg16(regVSAW0, uint16(d.vertOffset))
	w.writeReg16(regVEAW0, uint16(p.h-1+d.vertOffset))

	// Full memory clear. The chip has no cheap completion status for this,
	// so a fixed settle delay is used.
	w.writeReg(regMCLR, mclrStart|mclrFull)
	w.sleep(500 * time.Millisecond)
	if w.err != nil {
		return w.err
	}

	if err := d.On(startOn); err != nil {
		return err
	}
	if err := d.gpiox(true); err != nil {
		return err
	}
	if err := d.pwm1Config(true, pwmClkDiv1024); err != nil {
		return err
	}
	return d.Brightness(255)
}

// writeCmd selects a register for the next data transfer.
func (d *Dev) writeCmd(reg byte) error {
	return d.c.Tx([]byte{cmdWrite, reg}, nil)
}

// writeData writes one byte to the currently selected register.
func (d *Dev) writeData(data byte) error {
	return d.c.Tx([]byte{dataWrite, data}, nil)
}

// writeDataRaw streams a byte sequence through the data write channel
// without scalar masking. Used for pixel streams, text and packed colors.
func (d *Dev) writeDataRaw(data []byte) error {
	w := make([]byte, 1, 1+len(data))
	w[0] = dataWrite
	w = append(w, data...)
	return d.c.Tx(w, nil)
}

// readData reads one byte from the currently selected register.
func (d *Dev) readData() (byte, error) {
	var buf [2]byte
	if err := d.c.Tx([]byte{dataRead, 0x00}, buf[:]); err != nil {
		return 0, err
	}
	return buf[1], nil
}

// readData16 reads two bytes from the currently selected register,
// most significant byte first.
func (d *Dev) readData16() (uint16, error) {
	var buf [3]byte
	if err := d.c.Tx([]byte{dataRead, 0x00, 0x00}, buf[:]); err != nil {
		return 0, err
	}
	return uint16(buf[1])<<8 | uint16(buf[2]), nil
}

// readReg selects a register and reads its value.
func (d *Dev) readReg(reg byte) (byte, error) {
	if err := d.writeCmd(reg); err != nil {
		return 0, err
	}
	return d.readData()
}

// writeReg selects a register and writes one byte to it.
func (d *Dev) writeReg(reg, data byte) error {
	if err := d.writeCmd(reg); err != nil {
		return err
	}
	return d.writeData(data)
}

// writeReg16 writes a 16-bit value as two 8-bit registers, low byte at reg,
// high byte at reg+1. The two writes are independent transactions: an
// external observer can see the register pair mid-update.
func (d *Dev) writeReg16(reg byte, data uint16) error {
	if err := d.writeReg(reg, byte(data)); err != nil {
		return err
	}
	return d.writeReg(reg+1, byte(data>>8))
}

// Status reads the chip status register through the status read cycle.
func (d *Dev) Status() (byte, error) {
	var buf [2]byte
	if err := d.c.Tx([]byte{cmdRead, 0x00}, buf[:]); err != nil {
		return 0, err
	}
	return buf[1], nil
}

// waitPoll reads a status register until the masked bits clear or timeout
// elapses. It returns false on timeout; bus errors are returned as-is.
func (d *Dev) waitPoll(reg, mask byte, timeout time.Duration) (bool, error) {
	start := time.Now()
	for {
		time.Sleep(pollInterval)
		v, err := d.readReg(reg)
		if err != nil {
			return false, err
		}
		if v&mask == 0 {
			return true, nil
		}
		if time.Since(start) >= timeout {
			return false, nil
		}
	}
}

// pollDraw waits for a drawing engine operation to complete.
func (d *Dev) pollDraw(reg, mask byte) error {
	ok, err := d.waitPoll(reg, mask, drawTimeout)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDrawTimeout
	}
	return nil
}

// gfxMode switches the chip to graphics mode. A no-op if the cached mode
// already matches.
func (d *Dev) gfxMode() error {
	if d.mode == modeGraphics {
		return nil
	}
	v, err := d.readReg(regMWCR0)
	if err != nil {
		return err
	}
	// The read leaves MWCR0 selected.
	if err := d.writeData(v &^ mwcr0TxtMode); err != nil {
		return err
	}
	d.mode = modeGraphics
	return nil
}

// txtMode switches the chip to text mode and selects the internal CGROM
// font. A no-op if the cached mode already matches.
func (d *Dev) txtMode() error {
	if d.mode == modeText {
		return nil
	}
	v, err := d.readReg(regMWCR0)
	if err != nil {
		return err
	}
	if err := d.writeData(v | mwcr0TxtMode); err != nil {
		return err
	}
	// Clearing these two font control bits is required to keep the text
	// engine rendering correctly after the mode switch.
	v, err = d.readReg(regFNCR0)
	if err != nil {
		return err
	}
	if err := d.writeData(v &^ (1<<7 | 1<<5)); err != nil {
		return err
	}
	d.mode = modeText
	return nil
}

// On turns the display on or off.
func (d *Dev) On(on bool) error {
	v := pwrrNormal | pwrrDispOff
	if on {
		v = pwrrNormal | pwrrDispOn
	}
	return d.writeReg(regPWRR, v)
}

// Sleep turns the display off and enters or leaves sleep mode.
func (d *Dev) Sleep(sleep bool) error {
	v := pwrrDispOff
	if sleep {
		v = pwrrDispOff | pwrrSleep
	}
	return d.writeReg(regPWRR, v)
}

// SoftReset performs a software reset of the controller.
func (d *Dev) SoftReset() error {
	if err := d.writeReg(regPWRR, pwrrSoftReset); err != nil {
		return err
	}
	if err := d.writeData(pwrrNormal); err != nil {
		return err
	}
	time.Sleep(time.Millisecond)
	return nil
}

// Brightness sets the backlight PWM duty cycle (0-255).
func (d *Dev) Brightness(level byte) error {
	return d.writeReg(regP1DCR, level)
}

// gpiox enables or disables the chip's extra GPIO output, which gates the
// panel on common breakout boards.
func (d *Dev) gpiox(on bool) error {
	v := byte(0)
	if on {
		v = 1
	}
	return d.writeReg(regGPIOX, v)
}

// pwm1Config configures the backlight PWM clock.
func (d *Dev) pwm1Config(on bool, clock byte) error {
	v := p1crDisable
	if on {
		v = p1crEnable
	}
	return d.writeReg(regP1CR, v|(clock&0xF))
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Halt turns the display off and puts the controller to sleep. Call
// Sleep(false) followed by On(true) to wake it again.
func (d *Dev) Halt() error {
	if err := d.On(false); err != nil {
		return err
	}
	return d.Sleep(true)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ra8875.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// checkXY validates a coordinate pair against the panel bounds. Drawing
// operations reject out-of-bounds geometry before any register write.
func (d *Dev) checkXY(x, y int) error {
	if x < 0 || x >= d.rect.Dx() || y < 0 || y >= d.rect.Dy() {
		return fmt.Errorf("ra8875: coordinates (%d,%d) out of bounds for %dx%d display",
			x, y, d.rect.Dx(), d.rect.Dy())
	}
	return nil
}

// regWriter batches sequential register writes, keeping the first error.
type regWriter struct {
	d   *Dev
	err error
}

func (w *regWriter) writeReg(reg, data byte) {
	if w.err == nil {
		w.err = w.d.writeReg(reg, data)
	}
}

func (w *regWriter) writeReg16(reg byte, data uint16) {
	if w.err == nil {
		w.err = w.d.writeReg16(reg, data)
	}
}

func (w *regWriter) sleep(t time.Duration) {
	if w.err == nil {
		time.Sleep(t)
	}
}

// fgColor writes the three foreground color channel registers from a packed
// RGB565 value.
func (w *regWriter) fgColor(c rgb565.RGB565) {
	w.writeReg(regFGCR0, byte(c>>11)&0x1F)
	w.writeReg(regFGCR1, byte(c>>5)&0x3F)
	w.writeReg(regFGCR2, byte(c)&0x1F)
}

// bgColor writes the three background color channel registers from a packed
// RGB565 value.
func (w *regWriter) bgColor(c rgb565.RGB565) {
	w.writeReg(regBGCR0, byte(c>>11)&0x1F)
	w.writeReg(regBGCR1, byte(c>>5)&0x3F)
	w.writeReg(regBGCR2, byte(c)&0x1F)
}

var _ conn.Resource = &Dev{}
