package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	design "Dogbone/internal/calc/design"
	"Dogbone/internal/specimen"
)

func TestCalculateBatch(t *testing.T) {
	a := specimen.Defaults()
	b := specimen.Defaults()
	b.GaugeDiameterMM = 6

	res, err := Calculate(Input{Items: []design.Input{{Params: a}, {Params: b}}})
	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.InDelta(t, 298.0, res.Results[0].Profile.TotalLengthMM, 1e-9)
	assert.Greater(t, res.Results[1].Profile.TransitionLengthMM, 0.0)
}

func TestEmptyBatchRejected(t *testing.T) {
	_, err := Calculate(Input{})
	assert.Error(t, err)
}

func TestBadItemFailsBatch(t *testing.T) {
	bad := specimen.Defaults()
	bad.GripLengthMM = 0
	_, err := Calculate(Input{Items: []design.Input{{Params: bad}}})
	assert.Error(t, err)
}
