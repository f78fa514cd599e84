package basin

import "fmt"

type Check struct {
	Criterion string `json:"criterion"`
	Target    string `json:"target"`
	Actual    string `json:"actual"`
	Passed    bool   `json:"passed"`
	Notes     string `json:"notes"`
}

// Evaluate runs the seven standard design criteria in fixed order. A failing
// check is advisory, never an error: the dimensions are still valid, the
// engineer just gets told what to reconsider.
func Evaluate(in Input, res Result) []Check {
	checks := make([]Check, 0, 7)

	dtOK := abs(res.DetentionActualHours-in.DetentionTimeHours)/in.DetentionTimeHours < 0.1
	checks = append(checks, Check{
		Criterion: "Detention Time Match",
		Target:    fmt.Sprintf("%.2f hours", in.DetentionTimeHours),
		Actual:    fmt.Sprintf("%.2f hours", res.DetentionActualHours),
		Passed:    dtOK,
		Notes:     pick(dtOK, "Within 10% of target", "Adjust depth or L:W ratio"),
	})

	orOK := abs(res.OverflowActualMD-in.OverflowRateMD)/in.OverflowRateMD < 0.1
	checks = append(checks, Check{
		Criterion: "Overflow Rate Match",
		Target:    fmt.Sprintf("%.1f m/d", in.OverflowRateMD),
		Actual:    fmt.Sprintf("%.1f m/d", res.OverflowActualMD),
		Passed:    orOK,
		Notes:     pick(orOK, "Within 10% of target", "Adjust depth or L:W ratio"),
	})

	hvOK := res.HorizontalVelocityMS >= 0.0015 && res.HorizontalVelocityMS <= 0.0045
	checks = append(checks, Check{
		Criterion: "Horizontal Velocity",
		Target:    "0.15-0.45 cm/s",
		Actual:    fmt.Sprintf("%.2f cm/s", res.HorizontalVelocityMS*100),
		Passed:    hvOK,
		Notes:     pick(hvOK, "Good for settling", "May cause scour or short-circuiting"),
	})

	lwOK := in.LengthWidthRatio >= 3.0 && in.LengthWidthRatio <= 5.0
	checks = append(checks, Check{
		Criterion: "Length:Width Ratio",
		Target:    "3:1 to 5:1",
		Actual:    fmt.Sprintf("%.1f:1", in.LengthWidthRatio),
		Passed:    lwOK,
		Notes:     pick(lwOK, "Good plug flow", "Adjust for better hydraulics"),
	})

	depthOK := in.DepthM >= 3.0 && in.DepthM <= 5.0
	checks = append(checks, Check{
		Criterion: "Basin Depth",
		Target:    "3-5 m",
		Actual:    fmt.Sprintf("%.1f m", in.DepthM),
		Passed:    depthOK,
		Notes:     pick(depthOK, "Typical range", "Consider structural implications"),
	})

	weirOK := res.WeirLoadingM3DM >= 125 && res.WeirLoadingM3DM <= 500
	checks = append(checks, Check{
		Criterion: "Weir Loading",
		Target:    "125-500 m³/d/m",
		Actual:    fmt.Sprintf("%.1f m³/d/m", res.WeirLoadingM3DM),
		Passed:    weirOK,
		Notes:     pick(weirOK, "Won't disturb floc", "Consider increasing weir length"),
	})

	reOK := res.ReynoldsNumber < 2000
	checks = append(checks, Check{
		Criterion: "Flow Regime",
		Target:    "Re < 2000 (Laminar)",
		Actual:    fmt.Sprintf("Re = %.0f", res.ReynoldsNumber),
		Passed:    reOK,
		Notes:     pick(reOK, "Laminar flow", "Turbulent - may affect settling"),
	})

	return checks
}

// AllPass reports whether every criterion passed.
func AllPass(checks []Check) bool {
	for _, c := range checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func pick(ok bool, pass, fail string) string {
	if ok {
		return pass
	}
	return fail
}
