package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Dogbone/internal/specimen"
)

func baseParams() specimen.Params {
	p := specimen.Defaults()
	p.GripLengthMM = 50
	p.GripDiameterMM = 15
	p.GaugeLengthMM = 30
	p.GaugeDiameterMM = 7
	p.FilletRadiusMM = 70
	p.Tapered = false
	return p
}

func TestTransitionLengthHeuristic(t *testing.T) {
	p := baseParams()
	// max((7.5-3.5)*4, 70*1.2) = max(16, 84) = 84
	assert.InDelta(t, 84.0, TransitionLength(p), 1e-9)

	prof, err := Generate(p)
	require.NoError(t, err)
	assert.InDelta(t, 84.0, prof.TransitionLengthMM, 1e-9)
	assert.InDelta(t, 298.0, prof.TotalLengthMM, 1e-9)
}

func TestTransitionLengthTapered(t *testing.T) {
	p := baseParams()
	p.Tapered = true
	p.TaperAngleDeg = 8
	// (7.5-3.5)/tan(8 deg)
	assert.InDelta(t, 4/math.Tan(8*math.Pi/180), TransitionLength(p), 1e-9)
	assert.InDelta(t, 28.45, TransitionLength(p), 0.01)
}

func TestTaperAngleClamped(t *testing.T) {
	p := baseParams()
	p.Tapered = true
	p.TaperAngleDeg = 0 // would divide by tan(0) without the clamp
	got := TransitionLength(p)
	want := 4 / math.Tan(7*math.Pi/180)
	assert.InDelta(t, want, got, 1e-9)
	assert.False(t, math.IsInf(got, 0))

	p.TaperAngleDeg = 45
	assert.InDelta(t, 4/math.Tan(10*math.Pi/180), TransitionLength(p), 1e-9)
}

func TestGenerateMonotonicAndDerived(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*specimen.Params)
	}{
		{"arc", func(p *specimen.Params) {}},
		{"small fillet", func(p *specimen.Params) { p.FilletRadiusMM = 1 }},
		{"tapered", func(p *specimen.Params) { p.Tapered = true; p.TaperAngleDeg = 9 }},
		{"thin gauge", func(p *specimen.Params) { p.GaugeDiameterMM = 2 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseParams()
			tc.mutate(&p)
			prof, err := Generate(p)
			require.NoError(t, err)

			require.NotEmpty(t, prof.Points)
			for i := 1; i < len(prof.Points); i++ {
				assert.GreaterOrEqual(t, prof.Points[i].X, prof.Points[i-1].X,
					"points must be non-decreasing in x")
			}
			for _, pt := range prof.Points {
				assert.GreaterOrEqual(t, pt.Y, 0.0)
			}

			first := prof.Points[0]
			last := prof.Points[len(prof.Points)-1]
			assert.InDelta(t, 0, first.Y, 1e-9)
			assert.InDelta(t, 0, last.Y, 1e-9)
			assert.InDelta(t, -prof.TotalLengthMM/2, first.X, 1e-9)
			assert.InDelta(t, prof.TotalLengthMM/2, last.X, 1e-9)

			want := 2*p.GripLengthMM + p.GaugeLengthMM + 2*prof.TransitionLengthMM
			assert.InDelta(t, want, prof.TotalLengthMM, 1e-9)
		})
	}
}

func TestTransitionTangency(t *testing.T) {
	p := baseParams()
	prof, err := Generate(p)
	require.NoError(t, err)

	// The cosine ease leaves the grip radius with near-zero slope: the
	// first interior sample stays close to the grip radius.
	var firstInterior Point
	for i := 1; i < len(prof.Points); i++ {
		if prof.Points[i].X > -prof.TotalLengthMM/2+p.GripLengthMM {
			firstInterior = prof.Points[i]
			break
		}
	}
	assert.InDelta(t, p.GripDiameterMM/2, firstInterior.Y, 0.05)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	p := baseParams()
	p.GaugeDiameterMM = 20
	_, err := Generate(p)
	assert.Error(t, err)

	p = baseParams()
	p.GripLengthMM = 0
	_, err = Generate(p)
	assert.Error(t, err)
}
