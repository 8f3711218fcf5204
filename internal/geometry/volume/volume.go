// Package volume estimates the fraction of gauge material a lattice removes
// without paying for Boolean evaluation. Closed-form per family, calibrated
// with empirical correction factors.
package volume

import (
	"math"

	"Dogbone/internal/geometry/lattice"
)

const (
	// strutOverlapFactor discounts strut volume for mutual overlap.
	strutOverlapFactor = 0.5
	// holeRemovalFactor scales a hole's nominal volume to its effective
	// removed volume.
	holeRemovalFactor = 0.8
	// maxFraction keeps the estimate strictly below 1.
	maxFraction = 0.999
)

// calibration holds the base fraction and density-offset sensitivity of the
// families estimated as base + offset*scale.
var calibration = map[lattice.Family]struct{ Base, Scale float64 }{
	lattice.BodyCentered: {Base: 0.35, Scale: 0.10},
	lattice.FaceCentered: {Base: 0.40, Scale: 0.10},
	lattice.Diamond:      {Base: 0.30, Scale: 0.12},
	lattice.Octet:        {Base: 0.45, Scale: 0.08},
	lattice.Gyroid:       {Base: 0.50, Scale: 0.15},
	lattice.Cross:        {Base: 0.25, Scale: 0.10},
}

// VoidFraction returns the estimated removed volume fraction in [0, 1).
func VoidFraction(family lattice.Family, p lattice.Params) float64 {
	switch family {
	case lattice.None:
		return 0
	case lattice.VerticalStrut:
		return clamp(periodicFeatureFraction(p, strutOverlapFactor))
	case lattice.VerticalHole:
		return clamp(periodicFeatureFraction(p, holeRemovalFactor))
	default:
		cal, ok := calibration[family]
		if !ok {
			return 0
		}
		return clamp(cal.Base + p.Offset*cal.Scale)
	}
}

// periodicFeatureFraction counts the axis-perpendicular features along the
// gauge length and relates their volume to the gauge volume.
func periodicFeatureFraction(p lattice.Params, correction float64) float64 {
	if p.CellMM <= 0 || p.RadiusMM <= 0 || p.LengthMM <= 0 {
		return 0
	}
	count := math.Floor(p.LengthMM / (2 * p.CellMM))
	if count <= 0 {
		return 0
	}
	strutR := p.ThicknessMM / 2
	featureVol := math.Pi * strutR * strutR * (2 * p.RadiusMM)
	gaugeVol := math.Pi * p.RadiusMM * p.RadiusMM * p.LengthMM
	return count * featureVol * correction / gaugeVol
}

func clamp(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > maxFraction {
		return maxFraction
	}
	return f
}
