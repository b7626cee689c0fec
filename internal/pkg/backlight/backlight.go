package backlight

import (
	"fmt"

	"github.com/d2r2/go-i2c"
	d2rlogger "github.com/d2r2/go-logger"
)

// DefaultAddress is the touchpad controller's address on its I2C bus.
const DefaultAddress = 0x15

// Register write understood by the touchpad controller. The byte after the
// prefix selects brightness, the terminator closes the transfer.
var cmdPrefix = []byte{0x05, 0x00, 0x3d, 0x03, 0x06, 0x00, 0x07, 0x00, 0x0d, 0x14, 0x03}

const (
	brightnessOn  = 0x01
	brightnessOff = 0x00
	cmdTerminator = 0xad
)

// Backlight drives the numpad lighting of the touchpad over I2C.
type Backlight struct {
	bus *i2c.I2C
}

func New(bus int, addr uint8) (*Backlight, error) {
	d2rlogger.ChangePackageLogLevel("i2c", d2rlogger.InfoLevel)

	conn, err := i2c.NewI2C(addr, bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %d: %w", bus, err)
	}
	return &Backlight{bus: conn}, nil
}

// SetBrightness switches the lighting fully on or off.
func (b *Backlight) SetBrightness(on bool) error {
	level := byte(brightnessOff)
	if on {
		level = brightnessOn
	}

	cmd := make([]byte, 0, len(cmdPrefix)+2)
	cmd = append(cmd, cmdPrefix...)
	cmd = append(cmd, level, cmdTerminator)

	if _, err := b.bus.WriteBytes(cmd); err != nil {
		return fmt.Errorf("brightness write: %w", err)
	}
	return nil
}

func (b *Backlight) Close() error {
	return b.bus.Close()
}
