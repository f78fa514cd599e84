package units

import (
	"math"
	"testing"
)

func TestToCubicMetersPerDay(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  FlowUnit
		want  float64
	}{
		{"m3/day passthrough", 10000, CubicMetersPerDay, 10000},
		{"empty unit defaults to m3/day", 500, "", 500},
		{"m3/hour", 100, CubicMetersPerHour, 2400},
		{"one MGD", 1, MillionGallonsDay, 3785.41},
		{"liters per second", 100, LitersPerSecond, 8640},
		{"cubic meters per second", 0.5, CubicMetersPerSec, 43200},
	}
	for _, tt := range tests {
		got, err := ToCubicMetersPerDay(tt.value, tt.unit)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestToCubicMetersPerDayErrors(t *testing.T) {
	if _, err := ToCubicMetersPerDay(100, "gallons"); err == nil {
		t.Error("unknown unit accepted")
	}
	if _, err := ToCubicMetersPerDay(0, CubicMetersPerDay); err == nil {
		t.Error("zero flow accepted")
	}
	if _, err := ToCubicMetersPerDay(-5, MillionGallonsDay); err == nil {
		t.Error("negative flow accepted")
	}
}
