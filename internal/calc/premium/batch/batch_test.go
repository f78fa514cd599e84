package batch

import (
	"testing"

	basin "Clarifier/internal/calc/basin"
)

func scenario(flow float64, basins int) basin.Request {
	return basin.Request{
		DetentionTimeHours: 2.0,
		OverflowRateMD:     1200.0,
		Flow:               flow,
		FlowUnits:          "m3/day",
		NumBasins:          basins,
		DepthM:             3.5,
		LengthWidthRatio:   4.0,
	}
}

func TestCalculateBatch(t *testing.T) {
	out, err := Calculate(BasinBatchInput{Items: []basin.Request{
		scenario(10000, 2),
		scenario(20000, 4),
	}})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(out.Results))
	}
	for i, r := range out.Results {
		if r.Results.FlowPerBasinM3Day != 5000 {
			t.Errorf("result %d: flow per basin = %v, want 5000", i, r.Results.FlowPerBasinM3Day)
		}
	}
}

func TestCalculateBatchEmpty(t *testing.T) {
	if _, err := Calculate(BasinBatchInput{}); err == nil {
		t.Error("empty batch accepted")
	}
}

func TestCalculateBatchFailsAtomically(t *testing.T) {
	bad := scenario(10000, 2)
	bad.DepthM = 0
	out, err := Calculate(BasinBatchInput{Items: []basin.Request{
		scenario(10000, 2),
		bad,
	}})
	if err == nil {
		t.Fatal("batch with invalid item accepted")
	}
	if len(out.Results) != 0 {
		t.Error("partial results returned on error")
	}
}
