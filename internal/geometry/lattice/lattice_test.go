package lattice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return Params{
		CellMM:      2,
		ThicknessMM: 0.5,
		Offset:      0.5,
		RadiusMM:    5,
		LengthMM:    20,
		Seed:        1,
	}
}

func checkInCylinder(t *testing.T, c [3]float64, p Params) {
	t.Helper()
	assert.LessOrEqual(t, math.Hypot(c[0], c[1]), p.RadiusMM+1e-9,
		"radial distance must stay inside the cylinder")
	assert.LessOrEqual(t, math.Abs(c[2]), p.LengthMM/2+1e-9,
		"axial coordinate must stay inside the cylinder")
}

func TestNoneIsEmpty(t *testing.T) {
	prims, err := Generate(None, testParams())
	require.NoError(t, err)
	assert.Empty(t, prims)
}

func TestAllFamiliesStayInsideCylinder(t *testing.T) {
	p := testParams()
	for _, family := range Families() {
		t.Run(string(family), func(t *testing.T) {
			prims, err := Generate(family, p)
			require.NoError(t, err)
			require.NotEmpty(t, prims)
			for _, prim := range prims {
				if prim.Kind == KindNode {
					checkInCylinder(t, [3]float64{prim.Center.X, prim.Center.Y, prim.Center.Z}, p)
					assert.Greater(t, prim.Radius, 0.0)
					continue
				}
				checkInCylinder(t, [3]float64{prim.P1.X, prim.P1.Y, prim.P1.Z}, p)
				checkInCylinder(t, [3]float64{prim.P2.X, prim.P2.Y, prim.P2.Z}, p)
				assert.GreaterOrEqual(t, prim.P1.Dist(prim.P2), minStrutLen,
					"zero-length struts must be skipped")
			}
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	p := testParams()
	for _, family := range Families() {
		a, err := Generate(family, p)
		require.NoError(t, err)
		b, err := Generate(family, p)
		require.NoError(t, err)
		assert.Equal(t, a, b, "family %s must be reproducible", family)
	}
}

func TestSeedChangesDiagonalSelection(t *testing.T) {
	p := testParams()
	p.Seed = 1
	a, err := Generate(BodyCentered, p)
	require.NoError(t, err)
	p.Seed = 2
	b, err := Generate(BodyCentered, p)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestZeroSeedDerivedFromParams(t *testing.T) {
	p := testParams()
	p.Seed = 0
	a, err := Generate(BodyCentered, p)
	require.NoError(t, err)
	b, err := Generate(BodyCentered, p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestVerticalSpacing(t *testing.T) {
	p := testParams()
	// spacing 2*cell = 4 over [-10, 10]: stations at -6, -2, 2, 6.
	prims, err := Generate(VerticalStrut, p)
	require.NoError(t, err)
	assert.Len(t, prims, 4)
	for _, prim := range prims {
		assert.Equal(t, KindStrut, prim.Kind)
		assert.InDelta(t, prim.P1.Z, prim.P2.Z, 1e-9, "struts are axis-perpendicular")
	}

	cross, err := Generate(Cross, p)
	require.NoError(t, err)
	assert.Len(t, cross, 8)
}

func TestHoleCuttersWiderThanStruts(t *testing.T) {
	p := testParams()
	struts, err := Generate(VerticalStrut, p)
	require.NoError(t, err)
	holes, err := Generate(VerticalHole, p)
	require.NoError(t, err)
	require.NotEmpty(t, struts)
	require.NotEmpty(t, holes)
	assert.Greater(t, holes[0].Radius, struts[0].Radius)
}

func TestGyroidBandRespectsOffset(t *testing.T) {
	p := testParams()
	sparse, err := Generate(Gyroid, p)
	require.NoError(t, err)

	// Widening the band through thickness adds primitives.
	p.ThicknessMM = 1.0
	dense, err := Generate(Gyroid, p)
	require.NoError(t, err)
	assert.Greater(t, len(dense), len(sparse))
}

func TestGenerateRejectsBadParams(t *testing.T) {
	p := testParams()
	p.CellMM = 0
	_, err := Generate(BodyCentered, p)
	assert.Error(t, err)

	p = testParams()
	p.RadiusMM = -1
	_, err = Generate(BodyCentered, p)
	assert.Error(t, err)

	_, err = Generate(Family("hexagon"), testParams())
	assert.Error(t, err)
}
