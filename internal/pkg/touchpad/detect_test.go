package touchpad

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const procSample = `I: Bus=0011 Vendor=0001 Product=0001 Version=ab41
N: Name="AT Translated Set 2 keyboard"
P: Phys=isa0060/serio0/input0
S: Sysfs=/devices/platform/i8042/serio0/input/input3
U: Uniq=
H: Handlers=sysrq kbd leds event3
B: EV=120013

I: Bus=0018 Vendor=04f3 Product=31b9 Version=0100
N: Name="ASUE140D:00 04F3:31B9 Touchpad"
P: Phys=i2c-ASUE140D:00
S: Sysfs=/devices/pci0000:00/0000:00:15.1/i2c_designware.1/i2c-2/i2c-ASUE140D:00/0018:04F3:31B9.0002/input/input19
U: Uniq=
H: Handlers=mouse0 event7
B: EV=b
`

func TestParse(t *testing.T) {
	info, err := parse(strings.NewReader(procSample))
	require.NoError(t, err)

	assert.Equal(t, "event7", info.Event)
	assert.Equal(t, 2, info.I2CBus)
	assert.Equal(t, "/dev/input/event7", info.EventPath())
}

func TestParseElanVariant(t *testing.T) {
	sample := strings.ReplaceAll(procSample, "ASUE140D:00 04F3:31B9", "ELAN1200:00 04F3:3090")
	info, err := parse(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "event7", info.Event)
}

func TestParseNoTouchpad(t *testing.T) {
	sample := strings.ReplaceAll(procSample, "Touchpad", "Mouse")
	_, err := parse(strings.NewReader(sample))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseMissingBusNumber(t *testing.T) {
	sample := strings.ReplaceAll(procSample, "i2c-2/", "usb1/1-3/")
	info, err := parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "event7", info.Event)
	assert.Equal(t, -1, info.I2CBus)
}
