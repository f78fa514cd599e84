package geometry

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type Input struct {
	LengthM float64 `json:"length_m"`
	WidthM  float64 `json:"width_m"`
	DepthM  float64 `json:"depth_m"`
}

func (h *Handler) Build(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	payload, err := Build(input.LengthM, input.WidthM, input.DepthM)
	if err != nil {
		http.Error(w, "Invalid dimensions", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
