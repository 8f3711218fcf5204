// Package standards checks a specimen parameter set against a named
// engineering standard. Advisory only: an invalid verdict never blocks
// geometry generation.
package standards

import (
	"fmt"

	"Dogbone/internal/specimen"
)

// Standard names a supported fatigue/tension test standard.
type Standard string

const (
	E8   Standard = "E8"
	E466 Standard = "E466"
	E606 Standard = "E606"
)

// Result is the validation verdict handed to warning collaborators.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

const (
	taperMinDeg = 7.0
	taperMaxDeg = 10.0
	// filletDiameterFactor is the minimum fillet radius per unit of
	// grip-to-gauge diameter difference for non-tapered transitions.
	filletDiameterFactor = 4.0
)

// Validate evaluates the rules in order and returns on the first failure.
// It never mutates params.
func Validate(p specimen.Params, std Standard) Result {
	if p.GaugeDiameterMM >= p.GripDiameterMM {
		return invalid("gauge diameter must be smaller than grip diameter")
	}

	if !p.Tapered {
		min := (p.GripDiameterMM - p.GaugeDiameterMM) * filletDiameterFactor
		if p.FilletRadiusMM < min {
			return invalid(fmt.Sprintf("fillet radius must be at least %.1f mm for this diameter difference", min))
		}
	}

	if p.GaugeDiameterMM > 0 {
		ratio := p.GaugeLengthMM / p.GaugeDiameterMM
		switch std {
		case E606:
			if ratio < 1.5 || ratio > 3 {
				return invalid(fmt.Sprintf("gauge length to diameter ratio %.2f outside [1.5, 3] required by E606", ratio))
			}
		case E466:
			if ratio < 2 {
				return invalid(fmt.Sprintf("gauge length to diameter ratio %.2f below the minimum of 2 required by E466", ratio))
			}
		}
	}

	if p.Tapered && (p.TaperAngleDeg < taperMinDeg || p.TaperAngleDeg > taperMaxDeg) {
		return invalid(fmt.Sprintf("taper angle %.1f must be between %.0f and %.0f degrees", p.TaperAngleDeg, taperMinDeg, taperMaxDeg))
	}

	return Result{Valid: true, Message: fmt.Sprintf("parameters conform to %s", std)}
}

func invalid(msg string) Result {
	return Result{Valid: false, Message: msg}
}
