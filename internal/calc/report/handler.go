package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	basin "Clarifier/internal/calc/basin"
	summary "Clarifier/internal/calc/summary"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string        `json:"project"`
	Author  string        `json:"author"`
	Title   string        `json:"title"`
	Notes   string        `json:"notes"`
	Design  basin.Request `json:"design"`
}

type Handler struct{}

// Generate renders the full design report: title block, summary table, the
// seven criteria checks and the preliminary cost estimate.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Sedimentation Basin Design Report"
	}

	resp, err := basin.Design(input.Design)
	if err != nil {
		if errors.Is(err, basin.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	rows := summary.Rows(resp.Input, resp.Results)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Design Summary")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.Cell(80, 6, row.Parameter)
		pdf.Cell(0, 6, row.Value)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Design Criteria Check")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	for _, c := range resp.Checks {
		status := "REVIEW"
		if c.Passed {
			status = "PASS"
		}
		pdf.Cell(55, 6, c.Criterion)
		pdf.Cell(42, 6, c.Target)
		pdf.Cell(42, 6, c.Actual)
		pdf.Cell(0, 6, status)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Preliminary Cost Estimate")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	cost := resp.Cost
	pdf.Cell(80, 6, "Concrete Required")
	pdf.Cell(0, 6, fmt.Sprintf("%.1f m³ ($%.0f)", cost.ConcreteVolumeM3, cost.ConcreteCost))
	pdf.Ln(6)
	pdf.Cell(80, 6, "Excavation Volume")
	pdf.Cell(0, 6, fmt.Sprintf("%.1f m³ ($%.0f)", cost.ExcavationVolumeM3, cost.ExcavationCost))
	pdf.Ln(6)
	pdf.Cell(80, 6, "Basin Footprint")
	pdf.Cell(0, 6, fmt.Sprintf("%.1f m²", cost.FootprintM2))
	pdf.Ln(6)
	pdf.Cell(80, 6, "Equipment")
	pdf.Cell(0, 6, fmt.Sprintf("$%.0f", cost.EquipmentCost))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(80, 6, "Total Estimated Cost")
	pdf.Cell(0, 6, fmt.Sprintf("$%.0f", cost.TotalCost))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 5, cost.Notes)
	pdf.Ln(8)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"basin_design_report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
