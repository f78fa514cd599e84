package basin

import (
	"errors"
	"math"
	"testing"
)

// reference scenario: 10000 m³/d over two basins, 2 h detention,
// 1200 m/d overflow, 3.5 m deep, 4:1 ratio
func referenceInput() Input {
	return Input{
		DetentionTimeHours: 2.0,
		OverflowRateMD:     1200.0,
		TargetRemovalPct:   75.0,
		FlowM3Day:          10000.0,
		NumBasins:          2,
		DepthM:             3.5,
		LengthWidthRatio:   4.0,
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCalculateReferenceScenario(t *testing.T) {
	res, err := Calculate(referenceInput())
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	tests := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"flow per basin", res.FlowPerBasinM3Day, 5000.0, 1e-9},
		{"volume required", res.VolumeRequiredM3, 416.6667, 1e-3},
		{"surface area required", res.SurfaceAreaRequiredM2, 4.1667, 1e-3},
		{"surface area for volume", res.SurfaceAreaForVolume, 119.0476, 1e-3},
		{"surface area actual", res.SurfaceAreaActualM2, 119.0476, 1e-3},
		{"width", res.WidthM, 5.4554, 1e-3},
		{"length", res.LengthM, 21.8218, 1e-3},
		{"volume actual", res.VolumeActualM3, 416.6667, 1e-3},
		{"detention actual", res.DetentionActualHours, 2.0, 1e-9},
		{"overflow actual", res.OverflowActualMD, 42.0, 1e-3},
		{"horizontal velocity", res.HorizontalVelocityMS, 0.0030308, 1e-6},
		{"weir length", res.WeirLengthM, 10.9109, 1e-3},
		{"weir loading m3/d/m", res.WeirLoadingM3DM, 458.2576, 1e-3},
		{"reynolds number", res.ReynoldsNumber, 10607.8, 1.0},
	}
	for _, tt := range tests {
		if !almostEqual(tt.got, tt.want, tt.tol) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestCalculateInvariants(t *testing.T) {
	inputs := []Input{
		referenceInput(),
		{DetentionTimeHours: 4, OverflowRateMD: 20, FlowM3Day: 5000, NumBasins: 1, DepthM: 4, LengthWidthRatio: 3},
		{DetentionTimeHours: 0.5, OverflowRateMD: 5000, FlowM3Day: 200000, NumBasins: 6, DepthM: 5, LengthWidthRatio: 5},
		{DetentionTimeHours: 12, OverflowRateMD: 1, FlowM3Day: 100, NumBasins: 1, DepthM: 2.5, LengthWidthRatio: 2},
	}
	for _, in := range inputs {
		res, err := Calculate(in)
		if err != nil {
			t.Fatalf("Calculate(%+v): %v", in, err)
		}
		if res.SurfaceAreaActualM2 < res.SurfaceAreaRequiredM2 {
			t.Errorf("actual area %v below overflow requirement %v", res.SurfaceAreaActualM2, res.SurfaceAreaRequiredM2)
		}
		if res.SurfaceAreaActualM2 < res.SurfaceAreaForVolume {
			t.Errorf("actual area %v below volume requirement %v", res.SurfaceAreaActualM2, res.SurfaceAreaForVolume)
		}
		if ratio := res.LengthM / res.WidthM; !almostEqual(ratio, in.LengthWidthRatio, 1e-9) {
			t.Errorf("length/width = %v, want %v", ratio, in.LengthWidthRatio)
		}
		if res.VolumeActualM3 != res.SurfaceAreaActualM2*in.DepthM {
			t.Errorf("volume %v != area*depth %v", res.VolumeActualM3, res.SurfaceAreaActualM2*in.DepthM)
		}
	}
}

func TestCalculateIdempotent(t *testing.T) {
	in := referenceInput()
	first, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestCalculateMoreBasinsShrinkDimensions(t *testing.T) {
	in := referenceInput()
	in.NumBasins = 1
	prev, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	for n := 2; n <= 5; n++ {
		in.NumBasins = n
		res, err := Calculate(in)
		if err != nil {
			t.Fatal(err)
		}
		if res.FlowPerBasinM3Day >= prev.FlowPerBasinM3Day {
			t.Errorf("n=%d: flow per basin did not decrease", n)
		}
		if res.SurfaceAreaActualM2 >= prev.SurfaceAreaActualM2 {
			t.Errorf("n=%d: surface area did not decrease", n)
		}
		if res.LengthM >= prev.LengthM || res.WidthM >= prev.WidthM {
			t.Errorf("n=%d: dimensions did not decrease", n)
		}
		prev = res
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	base := referenceInput()
	mutate := []struct {
		name string
		fn   func(*Input)
	}{
		{"zero detention", func(in *Input) { in.DetentionTimeHours = 0 }},
		{"negative overflow", func(in *Input) { in.OverflowRateMD = -1 }},
		{"zero flow", func(in *Input) { in.FlowM3Day = 0 }},
		{"zero basins", func(in *Input) { in.NumBasins = 0 }},
		{"negative depth", func(in *Input) { in.DepthM = -3 }},
		{"zero ratio", func(in *Input) { in.LengthWidthRatio = 0 }},
		{"removal over 100", func(in *Input) { in.TargetRemovalPct = 101 }},
		{"negative removal", func(in *Input) { in.TargetRemovalPct = -1 }},
	}
	for _, tt := range mutate {
		in := base
		tt.fn(&in)
		res, err := Calculate(in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", tt.name, err)
		}
		if res != (Result{}) {
			t.Errorf("%s: partial result produced on error", tt.name)
		}
	}
}

func TestTargetRemovalDoesNotAffectSizing(t *testing.T) {
	a := referenceInput()
	b := referenceInput()
	b.TargetRemovalPct = 10.0

	resA, err := Calculate(a)
	if err != nil {
		t.Fatal(err)
	}
	resB, err := Calculate(b)
	if err != nil {
		t.Fatal(err)
	}
	if resA != resB {
		t.Error("target removal changed sizing output")
	}
}
