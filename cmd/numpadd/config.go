package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-ini/ini"

	"numpadd/internal/pkg/backlight"
)

type Config struct {
	Model         string
	PollInterval  time.Duration
	PercentageKey string
	LayoutDir     string

	I2CBus     int // -1: autodetect from the touchpad's sysfs path
	I2CAddress uint8
}

func defaultConfig() Config {
	return Config{
		Model:         "m433ia",
		PollInterval:  time.Second / 10,
		PercentageKey: "KEY_5",
		I2CBus:        -1,
		I2CAddress:    backlight.DefaultAddress,
	}
}

// LoadConfig reads the driver configuration. A missing file falls back to
// the defaults, a malformed one is a fatal setup error.
func LoadConfig(path string) (Config, error) {
	c := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("read config: %w", err)
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}

	sec := cfg.Section("numpadd")
	if v := sec.Key("model").String(); v != "" {
		c.Model = v
	}
	if v := sec.Key("poll_rate").String(); v != "" {
		rate, err := sec.Key("poll_rate").Int()
		if err != nil || rate < 1 {
			return c, fmt.Errorf("invalid poll_rate %q", v)
		}
		c.PollInterval = time.Second / time.Duration(rate)
	}
	if v := sec.Key("percentage_key").String(); v != "" {
		c.PercentageKey = v
	}
	if v := sec.Key("layout_dir").String(); v != "" {
		c.LayoutDir = v
	}

	sec = cfg.Section("i2c")
	if v := sec.Key("bus").String(); v != "" {
		bus, err := sec.Key("bus").Int()
		if err != nil {
			return c, fmt.Errorf("invalid i2c bus %q", v)
		}
		c.I2CBus = bus
	}
	if v := sec.Key("address").String(); v != "" {
		addr, err := strconv.ParseUint(v, 0, 8) // decimal or 0x-prefixed hex
		if err != nil || addr > 0x7f {
			return c, fmt.Errorf("invalid i2c address %q", v)
		}
		c.I2CAddress = uint8(addr)
	}

	return c, nil
}
