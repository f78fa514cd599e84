package summary

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"

	basin "Clarifier/internal/calc/basin"

	"github.com/dustin/go-humanize"
)

// Row is one line of the design summary report. The row order is fixed and
// mirrors the summary table clients render and export.
type Row struct {
	Parameter string `json:"parameter"`
	Value     string `json:"value"`
}

func comma0(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

func comma1(v float64) string {
	return humanize.FormatFloat("#,###.#", v)
}

// Rows builds the 17 summary rows from a sized design.
func Rows(in basin.Input, res basin.Result) []Row {
	return []Row{
		{"Design Flow Rate", fmt.Sprintf("%s m³/d", comma0(in.FlowM3Day))},
		{"Number of Basins", fmt.Sprintf("%d", in.NumBasins)},
		{"Flow per Basin", fmt.Sprintf("%s m³/d", comma0(res.FlowPerBasinM3Day))},
		{"Target Removal", fmt.Sprintf("%.1f%%", in.TargetRemovalPct)},
		{"Detention Time (Design)", fmt.Sprintf("%.2f hours", in.DetentionTimeHours)},
		{"Detention Time (Actual)", fmt.Sprintf("%.2f hours", res.DetentionActualHours)},
		{"Overflow Rate (Design)", fmt.Sprintf("%.1f m/d", in.OverflowRateMD)},
		{"Overflow Rate (Actual)", fmt.Sprintf("%.1f m/d", res.OverflowActualMD)},
		{"Basin Length", fmt.Sprintf("%.2f m", res.LengthM)},
		{"Basin Width", fmt.Sprintf("%.2f m", res.WidthM)},
		{"Basin Depth", fmt.Sprintf("%.2f m", in.DepthM)},
		{"Basin Volume", fmt.Sprintf("%s m³", comma1(res.VolumeActualM3))},
		{"Surface Area", fmt.Sprintf("%s m²", comma1(res.SurfaceAreaActualM2))},
		{"Length:Width Ratio", fmt.Sprintf("%.1f:1", in.LengthWidthRatio)},
		{"Horizontal Velocity", fmt.Sprintf("%.2f cm/s", res.HorizontalVelocityMS*100)},
		{"Weir Loading", fmt.Sprintf("%.1f m³/d/m", res.WeirLoadingM3DM)},
		{"Reynolds Number", comma0(res.ReynoldsNumber)},
	}
}

// CSV renders rows with the standard "Parameter,Value" header.
func CSV(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Parameter", "Value"}); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write([]string{row.Parameter, row.Value}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
