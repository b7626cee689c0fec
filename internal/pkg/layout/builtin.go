package layout

import (
	"time"

	"github.com/holoplot/go-evdev"
)

// Built-in per-model key grids. KEY_5 marks the percentage slot, remapped to
// the configured substitute key at runtime.
var builtin = map[string]Layout{
	"m433ia": {
		Rows: 4, Cols: 5,
		TopOffset: 0.2,
		TryTimes:  5,
		TrySleep:  100 * time.Millisecond,
		Keys: [][]evdev.EvCode{
			{evdev.KEY_KP7, evdev.KEY_KP8, evdev.KEY_KP9, evdev.KEY_KPSLASH, evdev.KEY_BACKSPACE},
			{evdev.KEY_KP4, evdev.KEY_KP5, evdev.KEY_KP6, evdev.KEY_KPASTERISK, evdev.KEY_BACKSPACE},
			{evdev.KEY_KP1, evdev.KEY_KP2, evdev.KEY_KP3, evdev.KEY_5, evdev.KEY_KPMINUS},
			{evdev.KEY_KP0, evdev.KEY_KPDOT, evdev.KEY_KPENTER, evdev.KEY_KPPLUS, evdev.KEY_KPEQUAL},
		},
	},
	// vertical numpad with about a third of a key of dead space at the top
	"ux581l": {
		Rows: 5, Cols: 4,
		TopOffset: 0.3,
		TryTimes:  5,
		TrySleep:  100 * time.Millisecond,
		Keys: [][]evdev.EvCode{
			{evdev.KEY_KPEQUAL, evdev.KEY_5, evdev.KEY_BACKSPACE, evdev.KEY_BACKSPACE},
			{evdev.KEY_KP7, evdev.KEY_KP8, evdev.KEY_KP9, evdev.KEY_KPSLASH},
			{evdev.KEY_KP4, evdev.KEY_KP5, evdev.KEY_KP6, evdev.KEY_KPASTERISK},
			{evdev.KEY_KP1, evdev.KEY_KP2, evdev.KEY_KP3, evdev.KEY_KPMINUS},
			{evdev.KEY_KP0, evdev.KEY_KPDOT, evdev.KEY_KPENTER, evdev.KEY_KPPLUS},
		},
	},
	"gx701": {
		Rows: 5, Cols: 4,
		TopOffset: 0,
		TryTimes:  5,
		TrySleep:  100 * time.Millisecond,
		Keys: [][]evdev.EvCode{
			{evdev.KEY_CALC, evdev.KEY_KPSLASH, evdev.KEY_KPASTERISK, evdev.KEY_KPMINUS},
			{evdev.KEY_KP7, evdev.KEY_KP8, evdev.KEY_KP9, evdev.KEY_KPPLUS},
			{evdev.KEY_KP4, evdev.KEY_KP5, evdev.KEY_KP6, evdev.KEY_KPPLUS},
			{evdev.KEY_KP1, evdev.KEY_KP2, evdev.KEY_KP3, evdev.KEY_KPENTER},
			{evdev.KEY_KP0, evdev.KEY_KP0, evdev.KEY_KPDOT, evdev.KEY_KPENTER},
		},
	},
}
