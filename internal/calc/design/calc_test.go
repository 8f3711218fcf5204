package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Dogbone/internal/geometry/lattice"
	"Dogbone/internal/specimen"
)

func TestCalculateDefaults(t *testing.T) {
	in := Input{Params: specimen.Defaults()}
	res, err := Calculate(in)
	require.NoError(t, err)

	assert.True(t, res.Validation.Valid)
	assert.Contains(t, res.Validation.Message, "E8", "standard defaults to E8")
	assert.Zero(t, res.VoidFraction, "no lattice means nothing removed")
	assert.Zero(t, res.PrimitiveCount)
	assert.InDelta(t, 298.0, res.Profile.TotalLengthMM, 1e-9)
}

func TestCalculateWithLattice(t *testing.T) {
	p := specimen.Defaults()
	p.LatticeType = lattice.VerticalHole
	res, err := Calculate(Input{Params: p})
	require.NoError(t, err)

	assert.Greater(t, res.PrimitiveCount, 0)
	assert.Greater(t, res.VoidFraction, 0.0)
	assert.Less(t, res.VoidFraction, 1.0)
	assert.InDelta(t, res.VoidFraction*100, res.MassSavingPct, 1e-9)
}

func TestCalculateRejectsBadParams(t *testing.T) {
	p := specimen.Defaults()
	p.GaugeDiameterMM = 20 // larger than grip
	_, err := Calculate(Input{Params: p})
	assert.Error(t, err)

	p = specimen.Defaults()
	p.LatticeType = lattice.BodyCentered
	p.LatticeCellMM = 0
	_, err = Calculate(Input{Params: p})
	assert.Error(t, err)
}

func TestBuildCombinesPrimitivesItReports(t *testing.T) {
	p := specimen.Defaults()
	p.LatticeType = lattice.BodyCentered
	p.Seed = 11

	res, err := Build(Input{Params: p})
	require.NoError(t, err)

	// Build combines the one generated set it also counts, so the count
	// must match an independent generation with the same seed.
	prims, err := lattice.Generate(p.LatticeType, p.LatticeParams())
	require.NoError(t, err)
	assert.Equal(t, len(prims), res.PrimitiveCount)

	calc, err := Calculate(Input{Params: p})
	require.NoError(t, err)
	assert.Equal(t, calc, res.Result)
}

func TestBuildSolidGauge(t *testing.T) {
	in := Input{Params: specimen.Defaults()}
	res, err := Build(in)
	require.NoError(t, err)

	assert.False(t, res.Degraded)
	assert.Zero(t, res.SkippedOps)
	assert.Greater(t, res.TriangleCount, 0)
	require.NotNil(t, res.Mesh)
}

func TestBuildWithHoles(t *testing.T) {
	p := specimen.Defaults()
	p.LatticeType = lattice.VerticalHole
	res, err := Build(Input{Params: p})
	require.NoError(t, err)

	assert.False(t, res.Degraded)
	assert.Greater(t, res.PrimitiveCount, 0)
	assert.Greater(t, res.TriangleCount, 0)
}
