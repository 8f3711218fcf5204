// Package solid merges lattice primitives with the gauge cylinder through
// sequential Boolean operations and triangulates the result. Individual
// operation failures drop only the offending primitive; a failure of the
// whole stage falls back to the plain cylinder flagged as degraded.
package solid

import (
	"log"
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/v2/model3d"

	"Dogbone/internal/geometry/lattice"
)

// Mode selects the Boolean combination strategy.
type Mode int

const (
	// ModeUnionSubtract unions the primitives into one lattice solid and
	// subtracts it from the cylinder once.
	ModeUnionSubtract Mode = iota
	// ModeIterative subtracts each primitive individually from the running
	// solid.
	ModeIterative
)

// ModeFor picks the natural mode for a family: discrete hole patterns are
// carved one by one, connected lattices as a single void shape.
func ModeFor(family lattice.Family) Mode {
	switch family {
	case lattice.VerticalStrut, lattice.VerticalHole, lattice.Cross:
		return ModeIterative
	default:
		return ModeUnionSubtract
	}
}

// DefaultMaxUnionOps caps the union chain length. Above the cap only every
// ceil(n/cap)-th primitive is combined, trading fidelity for bounded cost.
const DefaultMaxUnionOps = 50

// Op is one Boolean operation. It returns the combined solid or an error
// for a degenerate operand; it must not mutate either operand.
type Op func(a, b model3d.Solid) (model3d.Solid, error)

// Combiner runs the combination pipeline. The operation funcs are fields so
// tests can inject failures.
type Combiner struct {
	MaxUnionOps int
	// DeltaMM is the marching-cubes grid step. Zero derives one from the
	// operand bounds.
	DeltaMM  float64
	Union    Op
	Subtract Op
}

func NewCombiner() *Combiner {
	return &Combiner{
		MaxUnionOps: DefaultMaxUnionOps,
		Union:       UnionSolids,
		Subtract:    SubtractSolids,
	}
}

// Result is the outcome of a combination. Degraded marks the fallback path
// where the mesh is the plain gauge cylinder; renderers show it wireframed.
type Result struct {
	Mesh          *model3d.Mesh
	Solid         model3d.Solid
	TriangleCount int
	SkippedOps    int
	Degraded      bool
}

// GaugeCylinder builds the solid gauge section: a cylinder about the Z axis
// centered on the origin.
func GaugeCylinder(radiusMM, lengthMM float64) model3d.Solid {
	return &model3d.Cylinder{
		P1:     model3d.XYZ(0, 0, -lengthMM/2),
		P2:     model3d.XYZ(0, 0, lengthMM/2),
		Radius: radiusMM,
	}
}

// Combine realizes the final gauge-section geometry. It never returns nil
// geometry: any panic escaping the stage is replaced by the plain cylinder
// mesh with Degraded set.
func (c *Combiner) Combine(cylinder model3d.Solid, prims []lattice.Primitive, mode Mode) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("lattice combination failed: %v; returning plain gauge cylinder", r)
			mesh := c.mesh(cylinder)
			res = Result{
				Mesh:          mesh,
				Solid:         cylinder,
				TriangleCount: len(mesh.TriangleSlice()),
				Degraded:      true,
			}
		}
	}()

	combined, skipped := cylinder, 0
	switch {
	case len(prims) == 0:
		// No lattice: the solid cylinder passes through unmodified.
	case mode == ModeIterative:
		combined, skipped = c.subtractEach(cylinder, prims)
	default:
		combined, skipped = c.unionThenSubtract(cylinder, prims)
	}

	mesh := c.mesh(combined)
	return Result{
		Mesh:          mesh,
		Solid:         combined,
		TriangleCount: len(mesh.TriangleSlice()),
		SkippedOps:    skipped,
	}
}

func (c *Combiner) subtractEach(cylinder model3d.Solid, prims []lattice.Primitive) (model3d.Solid, int) {
	running, skipped := cylinder, 0
	for _, p := range prims {
		next, err := c.Subtract(running, p.Solid())
		if err != nil {
			log.Printf("boolean subtraction failed, skipping primitive: %v", err)
			skipped++
			continue
		}
		running = next
	}
	return running, skipped
}

func (c *Combiner) unionThenSubtract(cylinder model3d.Solid, prims []lattice.Primitive) (model3d.Solid, int) {
	sel := strideSample(prims, c.maxOps())
	skipped := len(prims) - len(sel)

	var latticeSolid model3d.Solid
	for _, p := range sel {
		s := p.Solid()
		if latticeSolid == nil {
			if err := checkOperand(s); err != nil {
				log.Printf("boolean union failed, skipping primitive: %v", err)
				skipped++
				continue
			}
			latticeSolid = s
			continue
		}
		next, err := c.Union(latticeSolid, s)
		if err != nil {
			log.Printf("boolean union failed, skipping primitive: %v", err)
			skipped++
			continue
		}
		latticeSolid = next
	}
	if latticeSolid == nil {
		return cylinder, skipped
	}
	final, err := c.Subtract(cylinder, latticeSolid)
	if err != nil {
		log.Printf("final subtraction failed, keeping solid cylinder: %v", err)
		return cylinder, skipped + 1
	}
	return final, skipped
}

func (c *Combiner) maxOps() int {
	if c.MaxUnionOps > 0 {
		return c.MaxUnionOps
	}
	return DefaultMaxUnionOps
}

// strideSample keeps every ceil(n/max)-th primitive once the count exceeds
// the cap.
func strideSample(prims []lattice.Primitive, max int) []lattice.Primitive {
	if len(prims) <= max {
		return prims
	}
	stride := (len(prims) + max - 1) / max
	out := make([]lattice.Primitive, 0, max)
	for i := 0; i < len(prims); i += stride {
		out = append(out, prims[i])
	}
	return out
}

func (c *Combiner) mesh(s model3d.Solid) *model3d.Mesh {
	delta := c.DeltaMM
	if delta <= 0 {
		size := s.Max().Sub(s.Min())
		delta = math.Max(size.X, math.Max(size.Y, size.Z)) / 40
	}
	mesh := model3d.MarchingCubesSearch(s, delta, 8)
	if mesh.NeedsRepair() || len(mesh.SingularVertices()) > 0 {
		log.Printf("combined mesh needed repair after triangulation")
	}
	return mesh
}

// UnionSolids is the default union op: operand validation plus a joined
// solid. New solids are allocated, operands are never mutated.
func UnionSolids(a, b model3d.Solid) (model3d.Solid, error) {
	if err := checkOperand(b); err != nil {
		return nil, errors.Wrap(err, "union")
	}
	return model3d.JoinedSolid{a, b}, nil
}

// SubtractSolids is the default subtraction op.
func SubtractSolids(a, b model3d.Solid) (model3d.Solid, error) {
	if err := checkOperand(b); err != nil {
		return nil, errors.Wrap(err, "subtract")
	}
	return &model3d.SubtractedSolid{Positive: a, Negative: b}, nil
}

// checkOperand rejects degenerate solids: non-finite or empty bounds.
func checkOperand(s model3d.Solid) error {
	min, max := s.Min(), s.Max()
	for _, v := range []float64{min.X, min.Y, min.Z, max.X, max.Y, max.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("operand has non-finite bounds")
		}
	}
	if min.X >= max.X || min.Y >= max.Y || min.Z >= max.Z {
		return errors.New("operand has empty bounds")
	}
	return nil
}

// STL serializes a mesh in binary STL, the form handed to export
// collaborators.
func STL(mesh *model3d.Mesh) []byte {
	return model3d.EncodeSTL(mesh.TriangleSlice())
}
