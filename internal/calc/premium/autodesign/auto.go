package autodesign

import (
	basin "Clarifier/internal/calc/basin"
	units "Clarifier/internal/calc/units"
)

type BasinAutoInput struct {
	DetentionTimeHours float64        `json:"detention_time_hours"`
	OverflowRateMD     float64        `json:"overflow_rate_m_d"`
	TargetRemovalPct   float64        `json:"target_removal_pct"`
	Flow               float64        `json:"flow"`
	FlowUnits          units.FlowUnit `json:"flow_units"`
	NumBasins          int            `json:"num_basins"`
	LengthWidthRatio   float64        `json:"length_width_ratio"`
}

type BasinAutoResult struct {
	ChosenDepthM     float64 `json:"chosen_depth_m"`
	ChosenRatio      float64 `json:"chosen_ratio"`
	basin.Response
	Notes string `json:"notes"`
}

// Depth selects the depth at which the detention-volume area requirement
// equals the overflow-rate area requirement, so both actuals land exactly on
// target. Clamped to the 3-5 m criterion range; a clamped depth shifts the
// governing requirement and the match checks report the drift.
func Depth(detentionHours, overflowRateMD float64) float64 {
	depth := overflowRateMD * detentionHours / 24.0
	if depth < 3.0 {
		depth = 3.0
	}
	if depth > 5.0 {
		depth = 5.0
	}
	return depth
}

// Basin auto-sizes a basin: depth from the balance point, ratio defaulted to
// the midpoint of the recommended 3:1-5:1 band when unset.
func Basin(in BasinAutoInput) (BasinAutoResult, error) {
	ratio := in.LengthWidthRatio
	if ratio <= 0 {
		ratio = 4.0
	}
	depth := Depth(in.DetentionTimeHours, in.OverflowRateMD)

	resp, err := basin.Design(basin.Request{
		DetentionTimeHours: in.DetentionTimeHours,
		OverflowRateMD:     in.OverflowRateMD,
		TargetRemovalPct:   in.TargetRemovalPct,
		Flow:               in.Flow,
		FlowUnits:          in.FlowUnits,
		NumBasins:          in.NumBasins,
		DepthM:             depth,
		LengthWidthRatio:   ratio,
	})
	if err != nil {
		return BasinAutoResult{}, err
	}
	return BasinAutoResult{
		ChosenDepthM: depth,
		ChosenRatio:  ratio,
		Response:     resp,
		Notes:        "Depth chosen so detention and overflow requirements coincide.",
	}, nil
}
