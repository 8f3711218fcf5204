package design

import (
	"fmt"

	"github.com/unixpickle/model3d/v2/model3d"

	"Dogbone/internal/geometry/lattice"
	"Dogbone/internal/geometry/profile"
	"Dogbone/internal/geometry/solid"
	"Dogbone/internal/geometry/volume"
	"Dogbone/internal/specimen"
	"Dogbone/internal/standards"
)

type Input struct {
	specimen.Params
	Standard standards.Standard `json:"standard"`
}

type Result struct {
	Profile        profile.Profile  `json:"profile"`
	Validation     standards.Result `json:"validation"`
	VoidFraction   float64          `json:"void_fraction"`
	MassSavingPct  float64          `json:"mass_saving_pct"`
	PrimitiveCount int              `json:"primitive_count"`
	Notes          string           `json:"notes"`
}

// BuildResult extends Result with the outcome of the full Boolean pipeline.
type BuildResult struct {
	Result
	Mesh          *model3d.Mesh `json:"-"`
	TriangleCount int           `json:"triangle_count"`
	SkippedOps    int           `json:"skipped_ops"`
	Degraded      bool          `json:"degraded"`
}

// Calculate runs the lightweight path: profile, validation and the
// analytical void estimate, without any Boolean evaluation. Validation
// failures do not block the geometry; they ride along in the result.
func Calculate(in Input) (Result, error) {
	res, _, err := evaluate(in)
	return res, err
}

// evaluate produces the analytical result along with the generated lattice
// so Build can feed the same primitives into the combiner.
func evaluate(in Input) (Result, []lattice.Primitive, error) {
	if in.Standard == "" {
		in.Standard = standards.E8
	}
	prof, err := profile.Generate(in.Params)
	if err != nil {
		return Result{}, nil, fmt.Errorf("invalid input: %v", err)
	}
	prims, err := lattice.Generate(in.LatticeType, in.LatticeParams())
	if err != nil {
		return Result{}, nil, fmt.Errorf("invalid input: %v", err)
	}
	vf := volume.VoidFraction(in.LatticeType, in.LatticeParams())
	return Result{
		Profile:        prof,
		Validation:     standards.Validate(in.Params, in.Standard),
		VoidFraction:   vf,
		MassSavingPct:  vf * 100,
		PrimitiveCount: len(prims),
		Notes:          "Void fraction is an analytical estimate; run the build for exact geometry.",
	}, prims, nil
}

// Build runs the full pipeline: everything Calculate does plus lattice
// combination and triangulation of the gauge section.
func Build(in Input) (BuildResult, error) {
	res, prims, err := evaluate(in)
	if err != nil {
		return BuildResult{}, err
	}
	comb := solid.NewCombiner()
	cyl := solid.GaugeCylinder(in.GaugeRadiusMM(), in.GaugeLengthMM)
	out := comb.Combine(cyl, prims, solid.ModeFor(in.LatticeType))
	return BuildResult{
		Result:        res,
		Mesh:          out.Mesh,
		TriangleCount: out.TriangleCount,
		SkippedOps:    out.SkippedOps,
		Degraded:      out.Degraded,
	}, nil
}
