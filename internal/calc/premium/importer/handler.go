package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	basin "Clarifier/internal/calc/basin"
	units "Clarifier/internal/calc/units"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type BasinImportResult struct {
	Count   int              `json:"count"`
	Results []basin.Response `json:"results"`
}

// Basin accepts an XLSX upload with one sizing scenario per row and returns
// the sized results. Rows that fail to parse or size are skipped.
func (h *Handler) Basin(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []basin.Response
	for i := 1; i < len(rows); i++ {
		req, err := parseBasinRow(rows[i])
		if err != nil {
			continue
		}
		resp, err := basin.Design(req)
		if err != nil {
			continue
		}
		results = append(results, resp)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BasinImportResult{Count: len(results), Results: results})
}

func parseBasinRow(row []string) (basin.Request, error) {
	// expected: detention_h, overflow_m_d, removal_pct, flow, flow_units, basins, depth_m, ratio
	if len(row) < 8 {
		return basin.Request{}, fmt.Errorf("bad row")
	}
	detention, err := toFloat(row[0])
	if err != nil {
		return basin.Request{}, err
	}
	overflow, err := toFloat(row[1])
	if err != nil {
		return basin.Request{}, err
	}
	removal, err := toFloat(row[2])
	if err != nil {
		return basin.Request{}, err
	}
	flow, err := toFloat(row[3])
	if err != nil {
		return basin.Request{}, err
	}
	basins, err := toInt(row[5])
	if err != nil {
		return basin.Request{}, err
	}
	depth, err := toFloat(row[6])
	if err != nil {
		return basin.Request{}, err
	}
	ratio, err := toFloat(row[7])
	if err != nil {
		return basin.Request{}, err
	}
	return basin.Request{
		DetentionTimeHours: detention,
		OverflowRateMD:     overflow,
		TargetRemovalPct:   removal,
		Flow:               flow,
		FlowUnits:          units.FlowUnit(row[4]),
		NumBasins:          basins,
		DepthM:             depth,
		LengthWidthRatio:   ratio,
	}, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func toInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
