package lattice

import (
	"math"

	"github.com/unixpickle/model3d/v2/model3d"
)

const (
	// gyroidResolution divides the cell size into the sampling grid step.
	gyroidResolution = 5
	// gyroidBandFactor scales thickness/cell into the |f| acceptance band.
	gyroidBandFactor = 1.0
)

// gyroidField evaluates the triple-sinusoid implicit surface with the
// density offset subtracted.
func gyroidField(c model3d.Coord3D, s, offset float64) float64 {
	return math.Sin(s*c.X)*math.Cos(s*c.Y) +
		math.Sin(s*c.Y)*math.Cos(s*c.Z) +
		math.Sin(s*c.Z)*math.Cos(s*c.X) - offset
}

// generateGyroid samples the implicit surface on a grid derived from the
// cell size. Grid points where |f| falls inside the thickness band get a
// node sphere and, when the next diagonal grid neighbor is also in band, a
// thin strut toward it.
func generateGyroid(p Params) []Primitive {
	cfg := configs[Gyroid]
	step := p.CellMM / gyroidResolution
	s := 2 * math.Pi / p.CellMM
	band := gyroidBandFactor * p.ThicknessMM / p.CellMM

	nodeR := p.ThicknessMM * cfg.NodeRadiusFactor
	strutR := p.ThicknessMM * cfg.StrutRadiusFactor

	var prims []Primitive
	for x := -p.RadiusMM; x <= p.RadiusMM; x += step {
		for y := -p.RadiusMM; y <= p.RadiusMM; y += step {
			for z := -p.LengthMM / 2; z <= p.LengthMM/2; z += step {
				c := model3d.XYZ(x, y, z)
				if !inCylinder(c, p.RadiusMM, p.LengthMM) {
					continue
				}
				if math.Abs(gyroidField(c, s, p.Offset)) >= band {
					continue
				}
				prims = append(prims, Primitive{
					Kind:   KindNode,
					Center: c,
					Radius: nodeR,
				})
				next := c.Add(model3d.XYZ(step, step, step))
				if !inCylinder(next, p.RadiusMM, p.LengthMM) {
					continue
				}
				if math.Abs(gyroidField(next, s, p.Offset)) >= band {
					continue
				}
				if c.Dist(next) < minStrutLen {
					continue
				}
				prims = append(prims, Primitive{
					Kind:   KindStrut,
					P1:     c,
					P2:     next,
					Radius: strutR,
				})
			}
		}
	}
	return prims
}
