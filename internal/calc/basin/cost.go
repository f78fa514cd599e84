package basin

const (
	wallThicknessM     = 0.3
	overExcavationM    = 0.5
	concreteUnitCost   = 150.0 // $/m³
	excavationUnitCost = 20.0  // $/m³
	equipmentPerBasin  = 50000.0
)

type Cost struct {
	ConcreteVolumeM3   float64 `json:"concrete_volume_m3"`
	ExcavationVolumeM3 float64 `json:"excavation_volume_m3"`
	FootprintM2        float64 `json:"footprint_m2"`
	ConcreteCost       float64 `json:"concrete_cost"`
	ExcavationCost     float64 `json:"excavation_cost"`
	EquipmentCost      float64 `json:"equipment_cost"`
	TotalCost          float64 `json:"total_cost"`
	Notes              string  `json:"notes"`
}

// EstimateCost prices the floor slab, four walls and excavation across all
// basins at fixed unit rates. Preliminary figures only.
func EstimateCost(in Input, res Result) Cost {
	n := float64(in.NumBasins)
	l, w, d := res.LengthM, res.WidthM, in.DepthM

	concrete := (l*w*wallThicknessM +
		2*(l*d*wallThicknessM) +
		2*(w*d*wallThicknessM)) * n
	excavation := l * w * (d + overExcavationM) * n
	footprint := l * w * n

	concreteCost := concrete * concreteUnitCost
	excavationCost := excavation * excavationUnitCost
	equipmentCost := n * equipmentPerBasin

	return Cost{
		ConcreteVolumeM3:   concrete,
		ExcavationVolumeM3: excavation,
		FootprintM2:        footprint,
		ConcreteCost:       concreteCost,
		ExcavationCost:     excavationCost,
		EquipmentCost:      equipmentCost,
		TotalCost:          concreteCost + excavationCost + equipmentCost,
		Notes:              "Rough estimates for preliminary design only.",
	}
}
