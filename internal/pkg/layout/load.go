package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/holoplot/go-evdev"
	"gopkg.in/yaml.v3"
)

const (
	defaultTryTimes = 5
	defaultTrySleep = 100 * time.Millisecond
)

// layoutFile is the raw YAML representation of a custom layout.
type layoutFile struct {
	Rows       int        `yaml:"rows"`
	Cols       int        `yaml:"cols"`
	TopOffset  float64    `yaml:"top_offset"`
	TryTimes   int        `yaml:"try_times"`
	TrySleepMs int        `yaml:"try_sleep_ms"`
	Keys       [][]string `yaml:"keys"`
}

// LoadFile reads a single custom layout. Key names resolve through the evdev
// name table, eg. "KEY_KP7".
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var lf layoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	l := Layout{
		Rows:      lf.Rows,
		Cols:      lf.Cols,
		TopOffset: lf.TopOffset,
		TryTimes:  lf.TryTimes,
		TrySleep:  time.Duration(lf.TrySleepMs) * time.Millisecond,
	}
	if l.TryTimes == 0 {
		l.TryTimes = defaultTryTimes
	}
	if l.TrySleep == 0 {
		l.TrySleep = defaultTrySleep
	}

	for _, row := range lf.Keys {
		var keys = make([]evdev.EvCode, 0, len(row))
		for _, name := range row {
			code, ok := evdev.KEYFromString[name]
			if !ok {
				return nil, fmt.Errorf("%s: unknown key name %q", path, name)
			}
			keys = append(keys, code)
		}
		l.Keys = append(l.Keys, keys)
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &l, nil
}

// Select resolves the layout for a model. Custom layouts in dir shadow the
// built-in tables of the same model name, dir may be empty.
func Select(model, dir string) (*Layout, error) {
	if dir != "" {
		path := filepath.Join(dir, model+".yaml")
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return Lookup(model)
}
