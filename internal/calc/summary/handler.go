package summary

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	basin "Clarifier/internal/calc/basin"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

func design(w http.ResponseWriter, r *http.Request) (basin.Response, []Row, bool) {
	var req basin.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return basin.Response{}, nil, false
	}
	resp, err := basin.Design(req)
	if err != nil {
		if errors.Is(err, basin.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return basin.Response{}, nil, false
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return basin.Response{}, nil, false
	}
	return resp, Rows(resp.Input, resp.Results), true
}

// Table returns the ordered summary rows as JSON.
func (h *Handler) Table(w http.ResponseWriter, r *http.Request) {
	_, rows, ok := design(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

// ExportCSV returns the summary as a CSV attachment.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	_, rows, ok := design(w, r)
	if !ok {
		return
	}
	data, err := CSV(rows)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=\"sedimentation_basin_design.csv\"")
	w.Write(data)
}

// ExportXLSX returns the summary as a single-sheet workbook.
func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	_, rows, ok := design(w, r)
	if !ok {
		return
	}
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Parameter")
	f.SetCellValue(sheet, "B1", "Value")
	for i, row := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.Parameter)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.Value)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"sedimentation_basin_design.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
