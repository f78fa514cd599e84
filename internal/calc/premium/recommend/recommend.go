package recommend

import "fmt"

// Weir loading criterion, m³/d per m of weir.
const (
	loadingMin = 125.0
	loadingMax = 500.0
	loadingMid = 250.0
)

type WeirRecommendInput struct {
	FlowPerBasinM3Day float64 `json:"flow_per_basin_m3_day"`
}

type WeirRecommendResult struct {
	MinLengthM         float64 `json:"min_length_m"`
	MaxLengthM         float64 `json:"max_length_m"`
	RecommendedLengthM float64 `json:"recommended_length_m"`
	Notes              string  `json:"notes"`
}

// WeirLength inverts the weir loading criterion: the admissible weir length
// band for the basin's flow, plus a midpoint recommendation (lower loading is
// gentler on settled floc).
func WeirLength(in WeirRecommendInput) (WeirRecommendResult, error) {
	if in.FlowPerBasinM3Day <= 0 {
		return WeirRecommendResult{}, fmt.Errorf("invalid input")
	}
	return WeirRecommendResult{
		MinLengthM:         in.FlowPerBasinM3Day / loadingMax,
		MaxLengthM:         in.FlowPerBasinM3Day / loadingMin,
		RecommendedLengthM: in.FlowPerBasinM3Day / loadingMid,
		Notes:              "Recommended weir length for 125-500 m³/d/m loading.",
	}, nil
}
