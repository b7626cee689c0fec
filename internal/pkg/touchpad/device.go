package touchpad

import (
	"errors"
	"fmt"

	"github.com/holoplot/go-evdev"

	"numpadd/internal/pkg/logg"
	"numpadd/internal/pkg/numpad"
)

// Device wraps the touchpad's evdev handler. Reads are non-blocking so the
// event loop can drain whatever is ready and idle-wait in between.
type Device struct {
	dev *evdev.InputDevice
}

func Open(path string) (*Device, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := dev.NonBlock(); err != nil {
		dev.Close()
		return nil, fmt.Errorf("enabling non-blocking event reading mode: %w", err)
	}

	name, _ := dev.Name()
	log.Info(fmt.Sprintf("reading input events from %q (%s)", name, path), logg.Info)
	return &Device{dev: dev}, nil
}

// Bounds reads the absolute axis limits of the touch surface.
func (d *Device) Bounds() (numpad.Bounds, error) {
	infos, err := d.dev.AbsInfos()
	if err != nil {
		return numpad.Bounds{}, fmt.Errorf("abs info: %w", err)
	}

	xi, ok := infos[evdev.ABS_MT_POSITION_X]
	if !ok {
		return numpad.Bounds{}, errors.New("device reports no ABS_MT_POSITION_X axis")
	}
	yi, ok := infos[evdev.ABS_MT_POSITION_Y]
	if !ok {
		return numpad.Bounds{}, errors.New("device reports no ABS_MT_POSITION_Y axis")
	}

	return numpad.Bounds{
		MinX: xi.Minimum, MaxX: xi.Maximum,
		MinY: yi.Minimum, MaxY: yi.Maximum,
	}, nil
}

// ReadOne returns the next queued event, or an error when none is ready.
func (d *Device) ReadOne() (*evdev.InputEvent, error) {
	return d.dev.ReadOne()
}

// Grab claims the device for exclusive usage, suppressing its regular
// pointer behavior while numpad mode is active.
func (d *Device) Grab() error {
	log.Info("grabbing touchpad for exclusive usage", logg.Debug)
	return d.dev.Grab()
}

func (d *Device) Ungrab() error {
	log.Info("ungrabbing touchpad", logg.Debug)
	return d.dev.Ungrab()
}

func (d *Device) Close() error {
	return d.dev.Close()
}
