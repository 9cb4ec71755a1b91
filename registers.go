package ra8875

// SPI transfer cycle selectors. Every bus transaction starts with one of
// these bytes, transmitted in the same chip-select frame as its payload.
const (
	dataWrite byte = 0x00 // Data write
	dataRead  byte = 0x40 // Data read
	cmdWrite  byte = 0x80 // Command (register number) write
	cmdRead   byte = 0xC0 // Status read
)

// Power and system registers.
const (
	regPWRR       byte = 0x01 // Power and display control
	pwrrDispOn    byte = 0x80
	pwrrDispOff   byte = 0x00
	pwrrSleep     byte = 0x02
	pwrrNormal    byte = 0x00
	pwrrSoftReset byte = 0x01

	regMRWC byte = 0x02 // Memory read/write port

	regPCSR  byte = 0x04 // Pixel clock setting
	pcsrPDatL byte = 0x80 // PCLK inversion
	pcsr2Clk  byte = 0x01 // PCLK = system clock / 2
	pcsr4Clk  byte = 0x02 // PCLK = system clock / 4

	regSYSR   byte = 0x10 // System configuration
	sysr16BPP byte = 0x0C
	sysrMCU8  byte = 0x00

	regPLLC1    byte = 0x88 // PLL control 1
	pllc1PLLDiv1 byte = 0x00
	regPLLC2    byte = 0x89 // PLL control 2
	pllc2Div4   byte = 0x02

	regGPIOX byte = 0xC7 // Extra GPIO (display enable on Adafruit boards)
)

// Horizontal timing registers. All horizontal periods are programmed in
// units of 8 pixel clocks.
const (
	regHDWR     byte = 0x14 // Display width
	regHNDFTR   byte = 0x15 // Non-display period fine tuning
	hndftrDEHigh byte = 0x00
	regHNDR     byte = 0x16 // Non-display period
	regHSTR     byte = 0x17 // HSYNC start position
	regHPWR     byte = 0x18 // HSYNC pulse width
	hpwrLow     byte = 0x00
)

// Vertical timing registers, in line counts. The 16-bit values are split
// low/high across consecutive addresses.
const (
	regVDHR0 byte = 0x19 // Display height
	regVNDR0 byte = 0x1B // Non-display period
	regVSTR0 byte = 0x1D // VSYNC start position
	regVPWR  byte = 0x1F // VSYNC pulse width
	vpwrLow  byte = 0x00
)

// Font control registers.
const (
	regFNCR0 byte = 0x21
	regFNCR1 byte = 0x22
)

// Text and graphics cursor registers (16-bit pairs).
const (
	regTxtCurX byte = 0x2A // Font write cursor X
	regTxtCurY byte = 0x2C // Font write cursor Y

	regCURH0  byte = 0x46 // Memory write cursor X
	regCURV0  byte = 0x48 // Memory write cursor Y
	regRCURH0 byte = 0x4A // Memory read cursor X
	regRCURV0 byte = 0x4C // Memory read cursor Y
)

// Active window registers (16-bit pairs).
const (
	regHSAW0 byte = 0x30 // Horizontal start
	regVSAW0 byte = 0x32 // Vertical start
	regHEAW0 byte = 0x34 // Horizontal end
	regVEAW0 byte = 0x36 // Vertical end
)

// Memory write control.
const (
	regMWCR0     byte = 0x40
	mwcr0TxtMode byte = 0x80
)

// Layer transparency.
const (
	regLTPR0 byte = 0x52
)

// Color registers. Each channel register holds the raw 5, 6 or 5 bit field.
const (
	regBGCR0 byte = 0x60 // Background red
	regBGCR1 byte = 0x61 // Background green
	regBGCR2 byte = 0x62 // Background blue
	regFGCR0 byte = 0x63 // Foreground red
	regFGCR1 byte = 0x64 // Foreground green
	regFGCR2 byte = 0x65 // Foreground blue
)

// Touch panel registers.
const (
	regTPCR0        byte = 0x70
	tpcr0Enable     byte = 0x80
	tpcr0Disable    byte = 0x00
	tpcr0Wait4096Clk byte = 0x30
	tpcr0WakeEnable byte = 0x08
	tpcr0ADCClkDiv4  byte = 0x02
	tpcr0ADCClkDiv16 byte = 0x04

	regTPCR1      byte = 0x71
	tpcr1Auto     byte = 0x00
	tpcr1Debounce byte = 0x04

	regTPXH  byte = 0x72 // Touch X high bits
	regTPYH  byte = 0x73 // Touch Y high bits
	regTPXYL byte = 0x74 // Touch X/Y low bits, shared
)

// Backlight PWM registers.
const (
	regP1CR    byte = 0x8A // PWM1 control
	p1crEnable byte = 0x80
	p1crDisable byte = 0x00

	regP1DCR byte = 0x8B // PWM1 duty cycle

	pwmClkDiv1024 byte = 0x0A
)

// Memory clear control.
const (
	regMCLR   byte = 0x8E
	mclrStart byte = 0x80
	mclrFull  byte = 0x00
)

// Drawing engine registers. Line, square and triangle share the DCR status
// bit; circles have their own; ellipses and curves live in a separate
// register entirely.
const (
	regDCR            byte = 0x90 // Draw line/circle/square control
	dcrLineSqTriStatus byte = 0x80
	dcrCircStart      byte = 0x40
	dcrCircStatus     byte = 0x40
	dcrFill           byte = 0x20
	dcrNoFill         byte = 0x00

	regDLHSR0 byte = 0x91 // Line/square start X
	regDLVSR0 byte = 0x93 // Line/square start Y
	regDLHER0 byte = 0x95 // Line/square end X
	regDLVER0 byte = 0x97 // Line/square end Y

	regDCHR0 byte = 0x99 // Circle center X
	regDCVR0 byte = 0x9B // Circle center Y
	regDCRR  byte = 0x9D // Circle radius

	regEllipse    byte = 0xA0 // Ellipse/curve control
	ellipseStatus byte = 0x80

	regELLA0 byte = 0xA1 // Ellipse long axis
	regELLB0 byte = 0xA3 // Ellipse short axis
	regDEHR0 byte = 0xA5 // Ellipse center X
	regDEVR0 byte = 0xA7 // Ellipse center Y

	regDTPH0 byte = 0xA9 // Triangle third point X
	regDTPV0 byte = 0xAB // Triangle third point Y
)

// Interrupt control registers.
const (
	regINTC1 byte = 0xF0 // Interrupt enable
	regINTC2 byte = 0xF1 // Interrupt status (write 1 to clear)
	intcTP   byte = 0x04 // Touch panel interrupt bit
)
