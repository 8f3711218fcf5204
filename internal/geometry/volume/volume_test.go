package volume

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"Dogbone/internal/geometry/lattice"
)

func testParams() lattice.Params {
	return lattice.Params{
		CellMM:      2,
		ThicknessMM: 0.5,
		Offset:      0.5,
		RadiusMM:    3.5,
		LengthMM:    30,
	}
}

func TestNoneIsZero(t *testing.T) {
	assert.Zero(t, VoidFraction(lattice.None, testParams()))
	assert.Zero(t, VoidFraction(lattice.None, lattice.Params{}))
}

func TestFractionAlwaysInRange(t *testing.T) {
	p := testParams()
	for _, family := range lattice.Families() {
		for _, offset := range []float64{0, 0.5, 2, 100} {
			p.Offset = offset
			f := VoidFraction(family, p)
			assert.GreaterOrEqual(t, f, 0.0, "%s offset=%v", family, offset)
			assert.Less(t, f, 1.0, "%s offset=%v", family, offset)
		}
	}
}

func TestStrutFamilyClosedForm(t *testing.T) {
	p := testParams()
	// 7 features along 30mm at 4mm spacing; pi*0.25^2*7 per feature.
	count := math.Floor(p.LengthMM / (2 * p.CellMM))
	feature := math.Pi * 0.25 * 0.25 * (2 * p.RadiusMM)
	gauge := math.Pi * p.RadiusMM * p.RadiusMM * p.LengthMM
	want := count * feature * 0.5 / gauge
	assert.InDelta(t, want, VoidFraction(lattice.VerticalStrut, p), 1e-9)
}

func TestHoleRemovesMoreThanStrut(t *testing.T) {
	p := testParams()
	assert.Greater(t,
		VoidFraction(lattice.VerticalHole, p),
		VoidFraction(lattice.VerticalStrut, p))
}

func TestOffsetIncreasesCalibratedFamilies(t *testing.T) {
	p := testParams()
	for _, family := range []lattice.Family{
		lattice.BodyCentered, lattice.FaceCentered, lattice.Diamond,
		lattice.Octet, lattice.Gyroid, lattice.Cross,
	} {
		p.Offset = 0.2
		low := VoidFraction(family, p)
		p.Offset = 1.5
		high := VoidFraction(family, p)
		assert.Greater(t, high, low, "family %s", family)
	}
}

func TestDegenerateBoundsYieldZero(t *testing.T) {
	p := testParams()
	p.CellMM = 0
	assert.Zero(t, VoidFraction(lattice.VerticalStrut, p))
	p = testParams()
	p.LengthMM = 1 // shorter than one feature spacing
	assert.Zero(t, VoidFraction(lattice.VerticalStrut, p))
}
