package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	design "Dogbone/internal/calc/design"
)

type Input struct {
	Project string       `json:"project"`
	Author  string       `json:"author"`
	Title   string       `json:"title"`
	Notes   string       `json:"notes"`
	Design  design.Input `json:"design"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Specimen Design Report"
	}

	res, err := design.Calculate(input.Design)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

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

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Dimensions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	p := res.Profile
	for _, line := range []string{
		fmt.Sprintf("Total length: %.2f mm", p.TotalLengthMM),
		fmt.Sprintf("Grip: %.2f mm long, %.2f mm diameter", p.GripLengthMM, p.GripDiameterMM),
		fmt.Sprintf("Gauge: %.2f mm long, %.2f mm diameter", p.GaugeLengthMM, p.GaugeDiameterMM),
		fmt.Sprintf("Transition length: %.2f mm", p.TransitionLengthMM),
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Lattice")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Type: %s", input.Design.LatticeType))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Estimated mass saving: %.1f%%", res.MassSavingPct))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Primitive count: %d", res.PrimitiveCount))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Validation (%s)", input.Design.Standard))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	verdict := "PASS"
	if !res.Validation.Valid {
		verdict = "FAIL"
	}
	pdf.Cell(0, 6, fmt.Sprintf("%s: %s", verdict, res.Validation.Message))
	pdf.Ln(10)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
