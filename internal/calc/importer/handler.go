package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	design "Dogbone/internal/calc/design"
	"Dogbone/internal/geometry/lattice"
	"Dogbone/internal/specimen"
	"Dogbone/internal/standards"
)

type Handler struct{}

type ImportResult struct {
	Count   int             `json:"count"`
	Results []design.Result `json:"results"`
}

// Specimens imports one parameter set per spreadsheet row and evaluates
// each on the lightweight path. Rows that fail to parse or calculate are
// skipped.
func (h *Handler) Specimens(w http.ResponseWriter, r *http.Request) {
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

	var results []design.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		res, err := design.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

// parseRow expects: grip_length, grip_diameter, gauge_length,
// gauge_diameter, fillet_radius, lattice_type(optional), cell(optional),
// thickness(optional), offset(optional), standard(optional).
func parseRow(row []string) (design.Input, error) {
	if len(row) < 5 {
		return design.Input{}, fmt.Errorf("bad row")
	}
	p := specimen.Defaults()
	var err error
	if p.GripLengthMM, err = toFloat(row[0]); err != nil {
		return design.Input{}, err
	}
	if p.GripDiameterMM, err = toFloat(row[1]); err != nil {
		return design.Input{}, err
	}
	if p.GaugeLengthMM, err = toFloat(row[2]); err != nil {
		return design.Input{}, err
	}
	if p.GaugeDiameterMM, err = toFloat(row[3]); err != nil {
		return design.Input{}, err
	}
	if p.FilletRadiusMM, err = toFloat(row[4]); err != nil {
		return design.Input{}, err
	}
	if len(row) > 5 && row[5] != "" {
		p.LatticeType = lattice.Family(row[5])
	}
	if len(row) > 6 && row[6] != "" {
		p.LatticeCellMM, _ = toFloat(row[6])
	}
	if len(row) > 7 && row[7] != "" {
		p.LatticeThicknessMM, _ = toFloat(row[7])
	}
	if len(row) > 8 && row[8] != "" {
		p.LatticeOffset, _ = toFloat(row[8])
	}
	std := standards.E8
	if len(row) > 9 && row[9] != "" {
		std = standards.Standard(row[9])
	}
	return design.Input{Params: p, Standard: std}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
