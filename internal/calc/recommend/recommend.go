package recommend

import (
	"fmt"

	"Dogbone/internal/standards"
)

type Input struct {
	GripDiameterMM  float64            `json:"grip_diameter_mm"`
	GaugeDiameterMM float64            `json:"gauge_diameter_mm"`
	Standard        standards.Standard `json:"standard"`
}

type Result struct {
	MinFilletRadiusMM float64 `json:"min_fillet_radius_mm"`
	MinGaugeLengthMM  float64 `json:"min_gauge_length_mm"`
	MaxGaugeLengthMM  float64 `json:"max_gauge_length_mm,omitempty"`
	Notes             string  `json:"notes"`
}

// Dimensions recommends the smallest fillet radius and the gauge-length
// window that keep a non-tapered specimen inside the chosen standard.
func Dimensions(in Input) (Result, error) {
	if in.GripDiameterMM <= 0 || in.GaugeDiameterMM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.GaugeDiameterMM >= in.GripDiameterMM {
		return Result{}, fmt.Errorf("gauge diameter must be smaller than grip diameter")
	}

	res := Result{
		MinFilletRadiusMM: (in.GripDiameterMM - in.GaugeDiameterMM) * 4,
	}
	switch in.Standard {
	case standards.E606:
		res.MinGaugeLengthMM = 1.5 * in.GaugeDiameterMM
		res.MaxGaugeLengthMM = 3 * in.GaugeDiameterMM
		res.Notes = "E606 requires a gauge length of 1.5 to 3 gauge diameters."
	case standards.E466:
		res.MinGaugeLengthMM = 2 * in.GaugeDiameterMM
		res.Notes = "E466 requires a gauge length of at least 2 gauge diameters."
	default:
		res.Notes = "E8 imposes no gauge length to diameter ratio."
	}
	return res, nil
}
