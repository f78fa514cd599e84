package units

import "fmt"

// FlowUnit identifies the unit a design flow was entered in. All sizing
// formulas work in m³/day, so heterogeneous inputs are normalized once at the
// edge and never converted again.
type FlowUnit string

const (
	CubicMetersPerDay  FlowUnit = "m3/day"
	CubicMetersPerHour FlowUnit = "m3/hour"
	MillionGallonsDay  FlowUnit = "MGD"
	LitersPerSecond    FlowUnit = "L/s"
	CubicMetersPerSec  FlowUnit = "m3/s"
)

// 1 MG = 3785.41 m³
const mgdFactor = 3785.41

func factor(unit FlowUnit) (float64, error) {
	switch unit {
	case CubicMetersPerDay, "":
		return 1, nil
	case CubicMetersPerHour:
		return 24, nil
	case MillionGallonsDay:
		return mgdFactor, nil
	case LitersPerSecond:
		return 0.001 * 86400, nil
	case CubicMetersPerSec:
		return 86400, nil
	default:
		return 0, fmt.Errorf("unknown flow unit %q", unit)
	}
}

// ToCubicMetersPerDay converts a flow value in the given unit to m³/day.
// An empty unit is treated as m³/day.
func ToCubicMetersPerDay(value float64, unit FlowUnit) (float64, error) {
	if value <= 0 {
		return 0, fmt.Errorf("flow must be positive, got %g", value)
	}
	f, err := factor(unit)
	if err != nil {
		return 0, err
	}
	return value * f, nil
}
