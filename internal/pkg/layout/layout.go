package layout

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/holoplot/go-evdev"
)

// Layout describes one touchpad model: the numpad key grid, its vertical
// placement and the device detection retry policy.
type Layout struct {
	Rows, Cols int

	// TopOffset shifts the grid down, in row units, for models with dead
	// space between the touchpad's top edge and the first key row.
	TopOffset float64

	// Keys holds the key grid, Keys[row][col].
	Keys [][]evdev.EvCode

	TryTimes int
	TrySleep time.Duration
}

func (l *Layout) Validate() error {
	if l.Rows < 1 || l.Cols < 1 {
		return fmt.Errorf("invalid grid dimensions %dx%d", l.Rows, l.Cols)
	}
	if len(l.Keys) != l.Rows {
		return fmt.Errorf("key grid has %d rows, expected %d", len(l.Keys), l.Rows)
	}
	for i, row := range l.Keys {
		if len(row) != l.Cols {
			return fmt.Errorf("key grid row %d has %d columns, expected %d", i, len(row), l.Cols)
		}
	}
	return nil
}

// Models returns the built-in model names, sorted.
func Models() []string {
	var names = make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the built-in layout for the given model.
func Lookup(model string) (*Layout, error) {
	l, ok := builtin[model]
	if !ok {
		return nil, fmt.Errorf("unknown model %q, available models: %s", model, strings.Join(Models(), ", "))
	}
	return &l, nil
}
