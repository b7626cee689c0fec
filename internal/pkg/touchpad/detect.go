package touchpad

// Detection of the numpad-capable touchpad from /proc/bus/input/devices.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"numpadd/internal/pkg/logg"
)

var log = logg.GetLogger()

const procDevices = "/proc/bus/input/devices"

var ErrNotFound = errors.New("no ASUS/ELAN touchpad present")

// Info points at the detected touchpad: its event handler and the I2C bus
// its controller sits on.
type Info struct {
	Event  string // handler name, eg. "event7"
	I2CBus int    // -1 when the sysfs path carries no bus number
}

// EventPath returns the /dev/input filepath of the touchpad handler.
func (i Info) EventPath() string {
	return "/dev/input/" + i.Event
}

var i2cBusRe = regexp.MustCompile(`i2c-(\d+)/`)

// parse scans /proc/bus/input/devices content for the first ASUE/ELAN
// touchpad block, collecting the event handler from its H: line and the I2C
// bus number from its S: line.
func parse(r io.Reader) (Info, error) {
	var (
		info  = Info{I2CBus: -1}
		found bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "N: "):
			found = (strings.Contains(line, `Name="ASUE`) || strings.Contains(line, `Name="ELAN`)) &&
				strings.Contains(line, "Touchpad")

		case found && strings.HasPrefix(line, "S: "):
			if m := i2cBusRe.FindStringSubmatch(line); m != nil {
				info.I2CBus, _ = strconv.Atoi(m[1])
			}

		case found && strings.HasPrefix(line, "H: "):
			for _, handler := range strings.Fields(strings.TrimPrefix(line, "H: Handlers=")) {
				if strings.HasPrefix(handler, "event") {
					info.Event = handler
					return info, nil
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Info{}, err
	}
	return Info{}, ErrNotFound
}

// Detect looks the touchpad up, retrying per the layout's policy. The device
// may appear late during boot, which is when this driver usually starts.
func Detect(tries int, sleep time.Duration) (Info, error) {
	for {
		info, err := detectOnce()
		if err == nil {
			log.Info(fmt.Sprintf("detected touchpad handler %s (i2c bus %d)", info.Event, info.I2CBus), logg.Debug)
			return info, nil
		}

		tries--
		if tries <= 0 {
			return Info{}, err
		}
		log.Info(fmt.Sprintf("touchpad not found, retrying: %v", err), logg.Debug)
		time.Sleep(sleep)
	}
}

func detectOnce() (Info, error) {
	fd, err := os.Open(procDevices)
	if err != nil {
		return Info{}, fmt.Errorf("open %s: %w", procDevices, err)
	}
	defer fd.Close()
	return parse(fd)
}
