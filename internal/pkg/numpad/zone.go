package numpad

import (
	"math"

	"numpadd/internal/pkg/layout"
)

// Bounds are the touchpad's absolute axis limits, read once at startup.
type Bounds struct {
	MinX, MaxX int32
	MinY, MaxY int32
}

type ZoneKind int

const (
	ZoneNone ZoneKind = iota
	ZoneNumlockCorner
	ZoneCalculatorCorner
	ZoneGridCell
)

func (k ZoneKind) String() string {
	switch k {
	case ZoneNumlockCorner:
		return "NumlockCorner"
	case ZoneCalculatorCorner:
		return "CalculatorCorner"
	case ZoneGridCell:
		return "GridCell"
	default:
		return "None"
	}
}

// Zone is the classification result for a single finger-down position.
// Row/Col are meaningful for ZoneGridCell only.
type Zone struct {
	Kind     ZoneKind
	Row, Col int
}

// Classify maps a touch position to a gesture zone. Corners take precedence
// over the grid; positions landing outside the configured grid classify as
// ZoneNone. Row arithmetic needs a true floor, the top offset can push the
// intermediate value below zero.
func Classify(x, y int32, b Bounds, lay *layout.Layout) Zone {
	var (
		fx   = float64(x)
		fy   = float64(y)
		maxx = float64(b.MaxX)
		maxy = float64(b.MaxY)
	)

	if fx > 0.95*maxx && fy < 0.09*maxy {
		return Zone{Kind: ZoneNumlockCorner}
	}
	if fx < 0.06*maxx && fy < 0.07*maxy {
		return Zone{Kind: ZoneCalculatorCorner}
	}

	col := int(math.Floor(float64(lay.Cols) * fx / (maxx + 1)))
	row := int(math.Floor(float64(lay.Rows)*fy/maxy - lay.TopOffset))
	if row < 0 || row >= lay.Rows || col < 0 || col >= lay.Cols {
		return Zone{Kind: ZoneNone}
	}
	return Zone{Kind: ZoneGridCell, Row: row, Col: col}
}
