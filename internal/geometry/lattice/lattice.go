// Package lattice emits the primitive solids (node spheres and strut
// cylinders) that make up an internal void pattern inside a cylindrical
// gauge volume. Each family is driven by a single config table; diagonal
// strut inclusion is randomized through an explicitly seeded source so the
// same parameters always produce the same lattice.
package lattice

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/v2/model3d"
)

// Family selects a lattice unit-cell pattern.
type Family string

const (
	None          Family = "none"
	BodyCentered  Family = "body_centered"
	FaceCentered  Family = "face_centered"
	Diamond       Family = "diamond"
	Octet         Family = "octet"
	Gyroid        Family = "gyroid"
	VerticalStrut Family = "vertical_strut"
	VerticalHole  Family = "vertical_hole"
	Cross         Family = "cross"
)

// Families lists every supported family except None.
func Families() []Family {
	return []Family{
		BodyCentered, FaceCentered, Diamond, Octet,
		Gyroid, VerticalStrut, VerticalHole, Cross,
	}
}

// Params bounds and sizes a lattice: a cylinder of RadiusMM about the Z axis
// spanning [-LengthMM/2, LengthMM/2], filled with cells of CellMM.
type Params struct {
	CellMM      float64 `json:"cell_mm"`
	ThicknessMM float64 `json:"thickness_mm"`
	Offset      float64 `json:"offset"`
	RadiusMM    float64 `json:"radius_mm"`
	LengthMM    float64 `json:"length_mm"`
	Seed        int64   `json:"seed,omitempty"`
}

// seed returns the explicit seed, or one derived from the geometric
// parameters so that identical inputs stay reproducible without the caller
// ever thinking about seeding.
func (p Params) seed() int64 {
	if p.Seed != 0 {
		return p.Seed
	}
	h := uint64(1469598103934665603)
	for _, v := range []float64{p.CellMM, p.ThicknessMM, p.Offset, p.RadiusMM, p.LengthMM} {
		h ^= math.Float64bits(v)
		h *= 1099511628211
	}
	return int64(h)
}

type Kind int

const (
	KindNode Kind = iota
	KindStrut
)

// Primitive is a single node sphere or strut cylinder. Struts use P1/P2,
// nodes use Center.
type Primitive struct {
	Kind   Kind
	Center model3d.Coord3D
	P1, P2 model3d.Coord3D
	Radius float64
}

// Solid converts the primitive into a model3d solid operand.
func (p Primitive) Solid() model3d.Solid {
	if p.Kind == KindNode {
		return &model3d.Sphere{Center: p.Center, Radius: p.Radius}
	}
	return &model3d.Cylinder{P1: p.P1, P2: p.P2, Radius: p.Radius}
}

// minStrutLen is the length below which a strut is considered degenerate
// and silently skipped.
const minStrutLen = 1e-6

// Generate emits the primitive list for one family. None yields an empty
// list; the caller then keeps the solid gauge cylinder unmodified.
func Generate(family Family, p Params) ([]Primitive, error) {
	if family == None {
		return nil, nil
	}
	if p.CellMM <= 0 || p.ThicknessMM <= 0 {
		return nil, errors.New("lattice cell size and thickness must be positive")
	}
	if p.RadiusMM <= 0 || p.LengthMM <= 0 {
		return nil, errors.New("lattice bounding cylinder must have positive radius and length")
	}

	switch family {
	case BodyCentered, FaceCentered, Diamond, Octet:
		return generatePeriodic(family, p), nil
	case VerticalStrut, VerticalHole, Cross:
		return generateVertical(family, p), nil
	case Gyroid:
		return generateGyroid(p), nil
	default:
		return nil, errors.Errorf("unknown lattice family %q", family)
	}
}

func inCylinder(c model3d.Coord3D, radius, length float64) bool {
	return math.Hypot(c.X, c.Y) <= radius && math.Abs(c.Z) <= length/2
}

func generatePeriodic(family Family, p Params) []Primitive {
	cfg := configs[family]
	rng := rand.New(rand.NewSource(p.seed()))

	nodeR := p.ThicknessMM * cfg.NodeRadiusFactor
	strutR := p.ThicknessMM * cfg.StrutRadiusFactor

	nRadial := int(math.Ceil(p.RadiusMM / p.CellMM))
	nAxial := int(math.Ceil(p.LengthMM / 2 / p.CellMM))

	var prims []Primitive
	for ix := -nRadial; ix < nRadial; ix++ {
		for iy := -nRadial; iy < nRadial; iy++ {
			for iz := -nAxial; iz < nAxial; iz++ {
				origin := model3d.XYZ(
					float64(ix)*p.CellMM,
					float64(iy)*p.CellMM,
					float64(iz)*p.CellMM,
				)
				nodes := make([]model3d.Coord3D, len(cfg.Nodes))
				inside := make([]bool, len(cfg.Nodes))
				for i, frac := range cfg.Nodes {
					nodes[i] = origin.Add(model3d.XYZ(
						frac[0]*p.CellMM, frac[1]*p.CellMM, frac[2]*p.CellMM,
					))
					inside[i] = inCylinder(nodes[i], p.RadiusMM, p.LengthMM)
					if inside[i] {
						prims = append(prims, Primitive{
							Kind:   KindNode,
							Center: nodes[i],
							Radius: nodeR,
						})
					}
				}
				for _, e := range cfg.Edges {
					if !inside[e.A] || !inside[e.B] {
						continue
					}
					// Axial edges always connect; diagonals thin out the
					// pattern at the family's inclusion probability.
					if e.Diagonal && rng.Float64() >= cfg.DiagonalProb {
						continue
					}
					if nodes[e.A].Dist(nodes[e.B]) < minStrutLen {
						continue
					}
					prims = append(prims, Primitive{
						Kind:   KindStrut,
						P1:     nodes[e.A],
						P2:     nodes[e.B],
						Radius: strutR,
					})
				}
			}
		}
	}
	return prims
}

// generateVertical places axis-perpendicular struts (or hole cutters) at a
// fixed axial spacing of two cell sizes. No randomization.
func generateVertical(family Family, p Params) []Primitive {
	cfg := configs[family]
	strutR := p.ThicknessMM * cfg.StrutRadiusFactor
	spacing := 2 * p.CellMM

	var prims []Primitive
	for z := -p.LengthMM/2 + spacing; z < p.LengthMM/2; z += spacing {
		prims = append(prims, Primitive{
			Kind:   KindStrut,
			P1:     model3d.XYZ(-p.RadiusMM, 0, z),
			P2:     model3d.XYZ(p.RadiusMM, 0, z),
			Radius: strutR,
		})
		if family == Cross {
			prims = append(prims, Primitive{
				Kind:   KindStrut,
				P1:     model3d.XYZ(0, -p.RadiusMM, z),
				P2:     model3d.XYZ(0, p.RadiusMM, z),
				Radius: strutR,
			})
		}
	}
	return prims
}
