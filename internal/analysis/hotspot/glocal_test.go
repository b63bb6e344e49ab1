package hotspot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telcolab/coverage-backend-go/internal/models"
)

// clusteredLine is 20 points on a line where the first five carry a
// value far above the rest.
func clusteredLine() (pts []float64, values []float64) {
	values = make([]float64, 20)
	lons := make([]float64, 20)
	for i := range values {
		lons[i] = float64(i) * 0.01
		if i < 5 {
			values[i] = 100
		} else {
			values[i] = 1
		}
	}
	return lons, values
}

func TestGLocalFindsHotAndColdSpots(t *testing.T) {
	lons, values := clusteredLine()

	w, err := KNNWeights(linePoints(lons...), 3)
	require.NoError(t, err)

	res, err := NewGLocal(999, 42).Test(values, w)
	require.NoError(t, err)
	require.Len(t, res.PSim, len(values))

	// point 2 sits inside the high-value run, all neighbours high
	assert.LessOrEqual(t, res.PSim[2], 0.05, "interior high point should be significant")
	assert.Greater(t, res.ZSim[2], 0.0)
	assert.Equal(t, models.SpotHotspot, Classify(res.PSim[2], res.ZSim[2], 0.05))

	// point 12 sits deep in the low-value run, all neighbours low
	assert.LessOrEqual(t, res.PSim[12], 0.05, "interior low point should be significant")
	assert.Less(t, res.ZSim[12], 0.0)
	assert.Equal(t, models.SpotColdspot, Classify(res.PSim[12], res.ZSim[12], 0.05))
}

func TestGLocalDeterministicForSeed(t *testing.T) {
	lons, values := clusteredLine()

	w, err := KNNWeights(linePoints(lons...), 3)
	require.NoError(t, err)

	first, err := NewGLocal(199, 7).Test(values, w)
	require.NoError(t, err)
	second, err := NewGLocal(199, 7).Test(values, w)
	require.NoError(t, err)

	assert.Equal(t, first.PSim, second.PSim)
	assert.Equal(t, first.ZSim, second.ZSim)
	assert.Equal(t, first.G, second.G)
}

func TestGLocalEmptyValues(t *testing.T) {
	_, err := NewGLocal(99, 1).Test(nil, &Weights{})
	assert.ErrorIs(t, err, ErrNoValues)
}

func TestGLocalWeightsMismatch(t *testing.T) {
	_, err := NewGLocal(99, 1).Test([]float64{1, 2, 3}, &Weights{K: 1, Neighbors: [][]int{{1}}})
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, models.SpotHotspot, Classify(0.01, 2.5, 0.05))
	assert.Equal(t, models.SpotColdspot, Classify(0.01, -2.5, 0.05))
	assert.Equal(t, models.SpotNotSignificant, Classify(0.2, 2.5, 0.05))
	assert.Equal(t, models.SpotNotSignificant, Classify(0.01, 0, 0.05))
}

func TestSweepOptimalNeighbours(t *testing.T) {
	lons, values := clusteredLine()

	sweep, err := NewGLocal(199, 3).SweepOptimalNeighbours(linePoints(lons...), values, 1, 7, 2, 0.05)
	require.NoError(t, err)
	require.Len(t, sweep, 3)

	for i, p := range sweep {
		assert.Equal(t, 1+2*i, p.K)
		assert.GreaterOrEqual(t, p.ShareSignificant, 0.0)
		assert.LessOrEqual(t, p.ShareSignificant, 100.0)
	}
}
