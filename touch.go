package ra8875

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// TouchInit initializes the touch screen digitizer. tpin is the optional
// touch interrupt line (active low); pass nil to poll the interrupt status
// register over the bus instead. enable selects whether sampling starts
// immediately.
func (d *Dev) TouchInit(tpin gpio.PinIO, enable bool) error {
	if tpin != nil {
		if err := tpin.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return fmt.Errorf("ra8875: failed to configure touch interrupt pin: %w", err)
		}
	}
	d.tpin = tpin
	// Clear any latched touch interrupt.
	if err := d.writeReg(regINTC2, intcTP); err != nil {
		return err
	}
	return d.TouchEnable(enable)
}

// TouchEnable enables or disables touch sampling.
func (d *Dev) TouchEnable(on bool) error {
	if on {
		w := &regWriter{d: d}
		w.writeReg(regTPCR0, tpcr0Enable|tpcr0Wait4096Clk|tpcr0WakeEnable|d.adcClk)
		w.writeReg(regTPCR1, tpcr1Auto|tpcr1Debounce)
		if w.err != nil {
			return w.err
		}
		v, err := d.readReg(regINTC1)
		if err != nil {
			return err
		}
		return d.writeData(v | intcTP)
	}
	v, err := d.readReg(regINTC1)
	if err != nil {
		return err
	}
	if err := d.writeData(v &^ intcTP); err != nil {
		return err
	}
	return d.writeReg(regTPCR0, tpcr0Disable)
}

// Touched reports whether the screen is currently being touched. When an
// interrupt pin is configured, a deasserted pin short-circuits to false
// without a bus transaction.
func (d *Dev) Touched() (bool, error) {
	if d.tpin != nil {
		// The interrupt line only reflects touch state reliably in
		// graphics mode.
		if err := d.gfxMode(); err != nil {
			return false, err
		}
		if d.tpin.Read() == gpio.High {
			return false, nil
		}
	}
	v, err := d.readReg(regINTC2)
	if err != nil {
		return false, err
	}
	return v&intcTP != 0, nil
}

// TouchRead reads the coordinates of the current touch position and clears
// the touch interrupt flag. The flag is edge-latched: without the clear, no
// further touch events are reported.
//
// Coordinates are raw 10-bit ADC values, not panel pixels.
func (d *Dev) TouchRead() (x, y int, err error) {
	xh, err := d.readReg(regTPXH)
	if err != nil {
		return 0, 0, err
	}
	yh, err := d.readReg(regTPYH)
	if err != nil {
		return 0, 0, err
	}
	low, err := d.readReg(regTPXYL)
	if err != nil {
		return 0, 0, err
	}
	x = int(xh)<<2 | int(low&0x03)
	y = int(yh)<<2 | int(low>>2&0x03)
	if err := d.writeReg(regINTC2, intcTP); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
