package solid

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/v2/model3d"

	"Dogbone/internal/geometry/lattice"
)

func testLatticeParams() lattice.Params {
	return lattice.Params{
		CellMM:      2,
		ThicknessMM: 1.2,
		Offset:      0.5,
		RadiusMM:    3.5,
		LengthMM:    15,
		Seed:        7,
	}
}

// coarseCombiner keeps marching cubes cheap in tests.
func coarseCombiner() *Combiner {
	c := NewCombiner()
	c.DeltaMM = 0.8
	return c
}

func TestCombineWithoutPrimitives(t *testing.T) {
	c := coarseCombiner()
	cyl := GaugeCylinder(3.5, 15)
	res := c.Combine(cyl, nil, ModeUnionSubtract)

	assert.False(t, res.Degraded)
	assert.Zero(t, res.SkippedOps)
	assert.Greater(t, res.TriangleCount, 0)
	assert.False(t, res.Mesh.NeedsRepair())
}

func TestCombineIsDeterministic(t *testing.T) {
	p := testLatticeParams()
	prims, err := lattice.Generate(lattice.BodyCentered, p)
	require.NoError(t, err)

	run := func() Result {
		return coarseCombiner().Combine(GaugeCylinder(p.RadiusMM, p.LengthMM), prims, ModeUnionSubtract)
	}
	a, b := run(), run()

	assert.Equal(t, a.TriangleCount, b.TriangleCount)
	assert.True(t, bytes.Equal(STL(a.Mesh), STL(b.Mesh)),
		"identical inputs and seed must yield bit-identical topology")
}

func TestIterativeSubtraction(t *testing.T) {
	p := testLatticeParams()
	prims, err := lattice.Generate(lattice.VerticalHole, p)
	require.NoError(t, err)
	require.NotEmpty(t, prims)

	c := coarseCombiner()
	solidOnly := c.Combine(GaugeCylinder(p.RadiusMM, p.LengthMM), nil, ModeIterative)
	carved := c.Combine(GaugeCylinder(p.RadiusMM, p.LengthMM), prims, ModeIterative)

	assert.False(t, carved.Degraded)
	assert.Zero(t, carved.SkippedOps)
	// Holes add interior surface.
	assert.Greater(t, carved.TriangleCount, solidOnly.TriangleCount)
}

func TestSingleOpFailureLosesOneFeature(t *testing.T) {
	p := testLatticeParams()
	prims, err := lattice.Generate(lattice.VerticalHole, p)
	require.NoError(t, err)
	require.Greater(t, len(prims), 1)

	c := coarseCombiner()
	calls := 0
	c.Subtract = func(a, b model3d.Solid) (model3d.Solid, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("forced failure")
		}
		return SubtractSolids(a, b)
	}
	res := c.Combine(GaugeCylinder(p.RadiusMM, p.LengthMM), prims, ModeIterative)

	assert.False(t, res.Degraded)
	assert.Equal(t, 1, res.SkippedOps)
	assert.Greater(t, res.TriangleCount, 0)
	assert.False(t, res.Mesh.NeedsRepair())
}

func TestUnionFailureSkipsPrimitive(t *testing.T) {
	p := testLatticeParams()
	prims, err := lattice.Generate(lattice.BodyCentered, p)
	require.NoError(t, err)

	c := coarseCombiner()
	calls := 0
	c.Union = func(a, b model3d.Solid) (model3d.Solid, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("forced failure")
		}
		return UnionSolids(a, b)
	}
	res := c.Combine(GaugeCylinder(p.RadiusMM, p.LengthMM), prims, ModeUnionSubtract)

	assert.False(t, res.Degraded)
	assert.GreaterOrEqual(t, res.SkippedOps, 1)
	assert.Greater(t, res.TriangleCount, 0)
}

func TestCatastrophicFailureFallsBackToCylinder(t *testing.T) {
	p := testLatticeParams()
	prims, err := lattice.Generate(lattice.VerticalHole, p)
	require.NoError(t, err)

	c := coarseCombiner()
	c.Subtract = func(a, b model3d.Solid) (model3d.Solid, error) {
		panic("exploding operand")
	}
	res := c.Combine(GaugeCylinder(p.RadiusMM, p.LengthMM), prims, ModeIterative)

	assert.True(t, res.Degraded)
	require.NotNil(t, res.Mesh)
	assert.Greater(t, res.TriangleCount, 0, "fallback must still be renderable")
}

func TestStrideSampleCapsOperations(t *testing.T) {
	prims := make([]lattice.Primitive, 120)
	sel := strideSample(prims, 50)
	assert.LessOrEqual(t, len(sel), 50)
	assert.Equal(t, 40, len(sel)) // stride ceil(120/50)=3

	small := make([]lattice.Primitive, 10)
	assert.Len(t, strideSample(small, 50), 10)
}

func TestDegenerateOperandRejected(t *testing.T) {
	cyl := GaugeCylinder(3.5, 15)
	_, err := SubtractSolids(cyl, &model3d.Sphere{Radius: 0})
	assert.Error(t, err)
	_, err = UnionSolids(cyl, &model3d.Sphere{Radius: 0})
	assert.Error(t, err)
}

func TestModeForFamily(t *testing.T) {
	assert.Equal(t, ModeIterative, ModeFor(lattice.VerticalHole))
	assert.Equal(t, ModeIterative, ModeFor(lattice.VerticalStrut))
	assert.Equal(t, ModeIterative, ModeFor(lattice.Cross))
	assert.Equal(t, ModeUnionSubtract, ModeFor(lattice.BodyCentered))
	assert.Equal(t, ModeUnionSubtract, ModeFor(lattice.Gyroid))
}
