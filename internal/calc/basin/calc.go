package basin

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a sizing input would divide by zero or
// take a negative square root. No partial result is ever produced.
var ErrInvalidInput = errors.New("invalid input")

// kinematic viscosity of water at 20°C, m²/s
const kinematicViscosity = 1.0e-6

type Input struct {
	DetentionTimeHours float64 `json:"detention_time_hours"`
	OverflowRateMD     float64 `json:"overflow_rate_m_d"`
	TargetRemovalPct   float64 `json:"target_removal_pct"`
	FlowM3Day          float64 `json:"flow_m3_day"`
	NumBasins          int     `json:"num_basins"`
	DepthM             float64 `json:"depth_m"`
	LengthWidthRatio   float64 `json:"length_width_ratio"`
}

type Result struct {
	FlowPerBasinM3Day     float64 `json:"flow_per_basin_m3_day"`
	VolumeRequiredM3      float64 `json:"volume_required_m3"`
	SurfaceAreaRequiredM2 float64 `json:"surface_area_required_m2"`
	SurfaceAreaForVolume  float64 `json:"surface_area_for_volume_m2"`
	SurfaceAreaActualM2   float64 `json:"surface_area_actual_m2"`
	WidthM                float64 `json:"width_m"`
	LengthM               float64 `json:"length_m"`
	VolumeActualM3        float64 `json:"volume_actual_m3"`
	DetentionActualHours  float64 `json:"detention_actual_hours"`
	OverflowActualMD      float64 `json:"overflow_actual_m_d"`
	HorizontalVelocityMS  float64 `json:"horizontal_velocity_m_s"`
	WeirLengthM           float64 `json:"weir_length_m"`
	WeirLoadingM3SM       float64 `json:"weir_loading_m3_s_m"`
	WeirLoadingM3DM       float64 `json:"weir_loading_m3_d_m"`
	ReynoldsNumber        float64 `json:"reynolds_number"`
}

func validate(in Input) error {
	if in.DetentionTimeHours <= 0 {
		return fmt.Errorf("%w: detention time must be positive", ErrInvalidInput)
	}
	if in.OverflowRateMD <= 0 {
		return fmt.Errorf("%w: overflow rate must be positive", ErrInvalidInput)
	}
	if in.TargetRemovalPct < 0 || in.TargetRemovalPct > 100 {
		return fmt.Errorf("%w: target removal must be within 0-100%%", ErrInvalidInput)
	}
	if in.FlowM3Day <= 0 {
		return fmt.Errorf("%w: flow must be positive", ErrInvalidInput)
	}
	if in.NumBasins < 1 {
		return fmt.Errorf("%w: at least one basin required", ErrInvalidInput)
	}
	if in.DepthM <= 0 {
		return fmt.Errorf("%w: depth must be positive", ErrInvalidInput)
	}
	if in.LengthWidthRatio <= 0 {
		return fmt.Errorf("%w: length:width ratio must be positive", ErrInvalidInput)
	}
	return nil
}

// Calculate sizes one rectangular basin for its share of the plant flow and
// derives the hydraulic parameters the design checks run against. The surface
// area is governed by the stricter of the overflow-rate and detention-volume
// requirements, so the actual detention time and overflow rate can exceed
// their targets but never fall short.
func Calculate(in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	flowPerBasin := in.FlowM3Day / float64(in.NumBasins)
	volumeRequired := flowPerBasin * in.DetentionTimeHours / 24.0
	areaRequired := flowPerBasin / in.OverflowRateMD
	areaForVolume := volumeRequired / in.DepthM
	areaActual := math.Max(areaRequired, areaForVolume)

	width := math.Sqrt(areaActual / in.LengthWidthRatio)
	length := width * in.LengthWidthRatio

	volumeActual := areaActual * in.DepthM
	detentionActual := volumeActual / flowPerBasin * 24.0
	overflowActual := flowPerBasin / areaActual

	// weirs on both ends of the basin
	weirLength := 2.0 * width
	flowPerSec := flowPerBasin / 86400.0
	horizVelocity := flowPerSec / (width * in.DepthM)

	return Result{
		FlowPerBasinM3Day:     flowPerBasin,
		VolumeRequiredM3:      volumeRequired,
		SurfaceAreaRequiredM2: areaRequired,
		SurfaceAreaForVolume:  areaForVolume,
		SurfaceAreaActualM2:   areaActual,
		WidthM:                width,
		LengthM:               length,
		VolumeActualM3:        volumeActual,
		DetentionActualHours:  detentionActual,
		OverflowActualMD:      overflowActual,
		HorizontalVelocityMS:  horizVelocity,
		WeirLengthM:           weirLength,
		WeirLoadingM3SM:       flowPerSec / weirLength,
		WeirLoadingM3DM:       flowPerBasin / weirLength,
		ReynoldsNumber:        horizVelocity * in.DepthM / kinematicViscosity,
	}, nil
}
