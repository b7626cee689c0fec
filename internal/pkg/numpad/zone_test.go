package numpad

import (
	"testing"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"

	"numpadd/internal/pkg/layout"
)

func gridLayout(topOffset float64) *layout.Layout {
	return &layout.Layout{
		Rows: 4, Cols: 5,
		TopOffset: topOffset,
		Keys: [][]evdev.EvCode{
			{evdev.KEY_KP7, evdev.KEY_KP8, evdev.KEY_KP9, evdev.KEY_KPSLASH, evdev.KEY_BACKSPACE},
			{evdev.KEY_KP4, evdev.KEY_KP5, evdev.KEY_KP6, evdev.KEY_KPASTERISK, evdev.KEY_BACKSPACE},
			{evdev.KEY_KP1, evdev.KEY_KP2, evdev.KEY_KP3, evdev.KEY_5, evdev.KEY_KPMINUS},
			{evdev.KEY_KP0, evdev.KEY_KPDOT, evdev.KEY_KPENTER, evdev.KEY_KPPLUS, evdev.KEY_KPEQUAL},
		},
	}
}

var testBounds = Bounds{MaxX: 1000, MaxY: 500}

func TestClassifyGridCell(t *testing.T) {
	zone := Classify(500, 250, testBounds, gridLayout(0))
	assert.Equal(t, Zone{Kind: ZoneGridCell, Row: 2, Col: 2}, zone)
}

func TestClassifyDeterminism(t *testing.T) {
	lay := gridLayout(0)
	first := Classify(321, 123, testBounds, lay)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify(321, 123, testBounds, lay))
	}
}

func TestClassifyNumlockCorner(t *testing.T) {
	// corner classification does not depend on the grid configuration
	for _, lay := range []*layout.Layout{gridLayout(0), gridLayout(0.3), {Rows: 1, Cols: 1, Keys: [][]evdev.EvCode{{evdev.KEY_KP0}}}} {
		zone := Classify(960, 30, testBounds, lay)
		assert.Equal(t, ZoneNumlockCorner, zone.Kind)
	}

	// just outside either threshold falls through to the grid
	assert.Equal(t, ZoneGridCell, Classify(950, 30, testBounds, gridLayout(0)).Kind)
	assert.Equal(t, ZoneGridCell, Classify(960, 45, testBounds, gridLayout(0)).Kind)
}

func TestClassifyCalculatorCorner(t *testing.T) {
	zone := Classify(20, 20, testBounds, gridLayout(0))
	assert.Equal(t, ZoneCalculatorCorner, zone.Kind)

	assert.Equal(t, ZoneGridCell, Classify(60, 20, testBounds, gridLayout(0)).Kind)
	assert.Equal(t, ZoneGridCell, Classify(20, 35, testBounds, gridLayout(0)).Kind)
}

func TestClassifyTopOffsetDeadZone(t *testing.T) {
	// 4*10/500 - 0.3 = -0.22, a true floor lands at row -1, not row 0
	zone := Classify(500, 10, testBounds, gridLayout(0.3))
	assert.Equal(t, ZoneNone, zone.Kind)

	// the same touch without the offset is a regular first-row cell
	zone = Classify(500, 10, testBounds, gridLayout(0))
	assert.Equal(t, Zone{Kind: ZoneGridCell, Row: 0, Col: 2}, zone)
}

func TestClassifyBelowGrid(t *testing.T) {
	// y at the very bottom edge computes row == Rows
	zone := Classify(500, 500, testBounds, gridLayout(0))
	assert.Equal(t, ZoneNone, zone.Kind)
}
