// Package profile computes the 2D half-outline of an axisymmetric dog-bone
// specimen. The outline lives in the y>=0 half-plane with x along the
// specimen axis; an external revolution step turns it into the outer solid.
package profile

import (
	"math"

	"github.com/pkg/errors"

	"Dogbone/internal/specimen"
)

// Point is one vertex of the half-profile polyline: x axial, y radial.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Profile is the ordered, x-non-decreasing half-outline plus the scalars
// derived while building it.
type Profile struct {
	Points []Point `json:"points"`

	TotalLengthMM      float64 `json:"total_length_mm"`
	GripLengthMM       float64 `json:"grip_length_mm"`
	GaugeLengthMM      float64 `json:"gauge_length_mm"`
	TransitionLengthMM float64 `json:"transition_length_mm"`
	GripDiameterMM     float64 `json:"grip_diameter_mm"`
	GaugeDiameterMM    float64 `json:"gauge_diameter_mm"`
}

const (
	// transitionSamples is the number of interior points on each curved
	// transition.
	transitionSamples = 20

	// Policy constants of the non-tapered transition-length heuristic:
	// max(spread*(gripR-gaugeR), fillet*filletRadius). Empirical, kept
	// exactly for compatibility with existing specimen libraries.
	transitionSpreadFactor = 4.0
	transitionFilletFactor = 1.2

	// Conical transitions are only meaningful in this half-angle window;
	// values outside are clamped before the trig evaluates.
	taperMinDeg = 7.0
	taperMaxDeg = 10.0
)

// TransitionLength returns the axial length of one grip-to-gauge transition.
func TransitionLength(p specimen.Params) float64 {
	dr := p.GripRadiusMM() - p.GaugeRadiusMM()
	if p.Tapered {
		angle := math.Min(math.Max(p.TaperAngleDeg, taperMinDeg), taperMaxDeg)
		return dr / math.Tan(angle*math.Pi/180)
	}
	return math.Max(dr*transitionSpreadFactor, p.FilletRadiusMM*transitionFilletFactor)
}

// Generate builds the half-profile. The points run from the left tip on the
// axis, up over the left grip, through the transition into the gauge, and
// mirror back down to the right tip.
func Generate(p specimen.Params) (Profile, error) {
	if p.GripLengthMM <= 0 || p.GaugeLengthMM <= 0 {
		return Profile{}, errors.New("grip and gauge length must be positive")
	}
	if p.GaugeDiameterMM >= p.GripDiameterMM {
		return Profile{}, errors.New("gauge diameter must be smaller than grip diameter")
	}

	gripR := p.GripRadiusMM()
	gaugeR := p.GaugeRadiusMM()
	tl := TransitionLength(p)
	total := 2*p.GripLengthMM + p.GaugeLengthMM + 2*tl
	half := total / 2

	pts := make([]Point, 0, 2*transitionSamples+10)
	pts = append(pts,
		Point{X: -half, Y: 0},
		Point{X: -half, Y: gripR},
		Point{X: -half + p.GripLengthMM, Y: gripR},
	)

	gaugeStart := -p.GaugeLengthMM / 2
	gaugeEnd := p.GaugeLengthMM / 2
	pts = appendTransition(pts, p, -half+p.GripLengthMM, gaugeStart, gripR, gaugeR)
	pts = append(pts,
		Point{X: gaugeStart, Y: gaugeR},
		Point{X: gaugeEnd, Y: gaugeR},
	)
	pts = appendTransition(pts, p, gaugeEnd, half-p.GripLengthMM, gaugeR, gripR)
	pts = append(pts,
		Point{X: half - p.GripLengthMM, Y: gripR},
		Point{X: half, Y: gripR},
		Point{X: half, Y: 0},
	)

	return Profile{
		Points:             pts,
		TotalLengthMM:      total,
		GripLengthMM:       p.GripLengthMM,
		GaugeLengthMM:      p.GaugeLengthMM,
		TransitionLengthMM: tl,
		GripDiameterMM:     p.GripDiameterMM,
		GaugeDiameterMM:    p.GaugeDiameterMM,
	}, nil
}

// appendTransition emits the interior samples of one transition from
// (x0, r0) to (x1, r1). The x coordinate advances linearly while the radius
// follows a cosine ease, so the curve leaves both radii with zero slope and
// stays tangent to grip and gauge. A tapered transition is a straight
// segment and needs no interior points.
func appendTransition(pts []Point, p specimen.Params, x0, x1, r0, r1 float64) []Point {
	if p.Tapered {
		return pts
	}
	for i := 1; i <= transitionSamples; i++ {
		t := float64(i) / float64(transitionSamples+1)
		sm := (1 - math.Cos(math.Pi*t)) / 2
		pts = append(pts, Point{
			X: x0 + (x1-x0)*t,
			Y: r0 + (r1-r0)*sm,
		})
	}
	return pts
}
