package recommend

import (
	"math"
	"testing"
)

func TestWeirLength(t *testing.T) {
	res, err := WeirLength(WeirRecommendInput{FlowPerBasinM3Day: 5000})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.MinLengthM-10.0) > 1e-9 {
		t.Errorf("min length = %v, want 10", res.MinLengthM)
	}
	if math.Abs(res.MaxLengthM-40.0) > 1e-9 {
		t.Errorf("max length = %v, want 40", res.MaxLengthM)
	}
	if math.Abs(res.RecommendedLengthM-20.0) > 1e-9 {
		t.Errorf("recommended length = %v, want 20", res.RecommendedLengthM)
	}
	if res.MinLengthM > res.RecommendedLengthM || res.RecommendedLengthM > res.MaxLengthM {
		t.Error("recommendation outside admissible band")
	}
}

func TestWeirLengthInvalid(t *testing.T) {
	if _, err := WeirLength(WeirRecommendInput{}); err == nil {
		t.Error("zero flow accepted")
	}
}
