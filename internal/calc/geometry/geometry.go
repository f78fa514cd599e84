package geometry

import "fmt"

// Payload carries everything a client needs to draw the basin in 3D plus
// plan and profile views. It is derived from the final dimensions only and
// never feeds back into sizing.

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Zone struct {
	Name  string  `json:"name"`
	FromX float64 `json:"from_x"`
	ToX   float64 `json:"to_x"`
}

type Profile struct {
	SludgeDepthM  float64 `json:"sludge_depth_m"`
	WaterDepthM   float64 `json:"water_depth_m"`
	InletStationM float64 `json:"inlet_station_m"`
	WeirStationM  float64 `json:"weir_station_m"`
}

type Payload struct {
	LengthM     float64  `json:"length_m"`
	WidthM      float64  `json:"width_m"`
	DepthM      float64  `json:"depth_m"`
	Corners     []Point  `json:"corners"`
	Edges       [][2]int `json:"edges"`
	WaterLevelM float64  `json:"water_level_m"`
	PlanZones   []Zone   `json:"plan_zones"`
	Profile     Profile  `json:"profile"`
}

// boxEdges indexes Corners: bottom ring, top ring, then verticals.
var boxEdges = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Build lays out the basin box with the inlet zone in the first 10% of the
// length and the outlet zone in the last 10%, water at 90% of depth and a
// sludge blanket at 15%.
func Build(length, width, depth float64) (Payload, error) {
	if length <= 0 || width <= 0 || depth <= 0 {
		return Payload{}, fmt.Errorf("dimensions must be positive")
	}
	corners := []Point{
		{0, 0, 0}, {length, 0, 0}, {length, width, 0}, {0, width, 0},
		{0, 0, depth}, {length, 0, depth}, {length, width, depth}, {0, width, depth},
	}
	return Payload{
		LengthM:     length,
		WidthM:      width,
		DepthM:      depth,
		Corners:     corners,
		Edges:       boxEdges,
		WaterLevelM: depth * 0.9,
		PlanZones: []Zone{
			{Name: "inlet", FromX: 0, ToX: length * 0.1},
			{Name: "settling", FromX: length * 0.1, ToX: length * 0.9},
			{Name: "outlet", FromX: length * 0.9, ToX: length},
		},
		Profile: Profile{
			SludgeDepthM:  depth * 0.15,
			WaterDepthM:   depth * 0.95,
			InletStationM: length * 0.05,
			WeirStationM:  length * 0.95,
		},
	}, nil
}
