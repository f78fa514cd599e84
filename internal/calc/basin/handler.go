package basin

import (
	"encoding/json"
	"errors"
	"net/http"

	units "Clarifier/internal/calc/units"
)

type Handler struct{}

// Request is the wire form of a sizing request. Flow may be entered in any
// supported unit; it is normalized to m³/day before the core ever sees it.
type Request struct {
	DetentionTimeHours float64        `json:"detention_time_hours"`
	OverflowRateMD     float64        `json:"overflow_rate_m_d"`
	TargetRemovalPct   float64        `json:"target_removal_pct"`
	Flow               float64        `json:"flow"`
	FlowUnits          units.FlowUnit `json:"flow_units"`
	NumBasins          int            `json:"num_basins"`
	DepthM             float64        `json:"depth_m"`
	LengthWidthRatio   float64        `json:"length_width_ratio"`
}

type Response struct {
	Input   Input   `json:"input"`
	Results Result  `json:"results"`
	Checks  []Check `json:"checks"`
	AllPass bool    `json:"all_pass"`
	Cost    Cost    `json:"cost"`
}

// Normalize converts the wire request into core inputs (flow in m³/day).
func (req Request) Normalize() (Input, error) {
	flow, err := units.ToCubicMetersPerDay(req.Flow, req.FlowUnits)
	if err != nil {
		return Input{}, err
	}
	return Input{
		DetentionTimeHours: req.DetentionTimeHours,
		OverflowRateMD:     req.OverflowRateMD,
		TargetRemovalPct:   req.TargetRemovalPct,
		FlowM3Day:          flow,
		NumBasins:          req.NumBasins,
		DepthM:             req.DepthM,
		LengthWidthRatio:   req.LengthWidthRatio,
	}, nil
}

// Design runs the full pipeline for one request: normalize, size, check, cost.
func Design(req Request) (Response, error) {
	in, err := req.Normalize()
	if err != nil {
		return Response{}, err
	}
	res, err := Calculate(in)
	if err != nil {
		return Response{}, err
	}
	checks := Evaluate(in, res)
	return Response{
		Input:   in,
		Results: res,
		Checks:  checks,
		AllPass: AllPass(checks),
		Cost:    EstimateCost(in, res),
	}, nil
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	resp, err := Design(req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
