// Package specimen holds the dimensional parameter set of an axisymmetric
// dog-bone test specimen shared by every tool in the service.
package specimen

import "Dogbone/internal/geometry/lattice"

// TransitionKind selects how the grip-to-gauge transition is shaped.
type TransitionKind string

const (
	TransitionArc    TransitionKind = "arc"
	TransitionSpline TransitionKind = "spline"
	TransitionCone   TransitionKind = "cone"
)

// Params describes one specimen. All dimensions are millimeters; the taper
// angle is the half-angle of a conical transition in degrees.
type Params struct {
	GripLengthMM    float64 `json:"grip_length_mm"`
	GripDiameterMM  float64 `json:"grip_diameter_mm"`
	GaugeLengthMM   float64 `json:"gauge_length_mm"`
	GaugeDiameterMM float64 `json:"gauge_diameter_mm"`
	FilletRadiusMM  float64 `json:"fillet_radius_mm"`

	Transition    TransitionKind `json:"transition"`
	Tapered       bool           `json:"tapered"`
	TaperAngleDeg float64        `json:"taper_angle_deg"`

	LatticeType        lattice.Family `json:"lattice_type"`
	LatticeCellMM      float64        `json:"lattice_cell_mm"`
	LatticeThicknessMM float64        `json:"lattice_thickness_mm"`
	LatticeOffset      float64        `json:"lattice_offset"`
	Seed               int64          `json:"seed,omitempty"`
}

// Defaults returns a specimen that passes every supported standard check.
func Defaults() Params {
	return Params{
		GripLengthMM:       50,
		GripDiameterMM:     15,
		GaugeLengthMM:      30,
		GaugeDiameterMM:    7,
		FilletRadiusMM:     70,
		Transition:         TransitionArc,
		TaperAngleDeg:      8,
		LatticeType:        lattice.None,
		LatticeCellMM:      2,
		LatticeThicknessMM: 0.6,
		LatticeOffset:      0.5,
	}
}

func (p Params) GripRadiusMM() float64  { return p.GripDiameterMM / 2 }
func (p Params) GaugeRadiusMM() float64 { return p.GaugeDiameterMM / 2 }

// LatticeParams derives the lattice bounding volume and density inputs: the
// pattern fills the gauge cylinder.
func (p Params) LatticeParams() lattice.Params {
	return lattice.Params{
		CellMM:      p.LatticeCellMM,
		ThicknessMM: p.LatticeThicknessMM,
		Offset:      p.LatticeOffset,
		RadiusMM:    p.GaugeRadiusMM(),
		LengthMM:    p.GaugeLengthMM,
		Seed:        p.Seed,
	}
}
