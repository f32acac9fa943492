package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	k, err := Parse("euclidean")
	require.NoError(t, err)
	assert.Equal(t, Euclidean, k)

	_, err = Parse("bogus")
	require.ErrorIs(t, err, ErrInvalidHeuristic)
}

func TestParseIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"EuClIdEaN", "EUCLIDEAN", "Euclidean"} {
		k, err := Parse(name)
		require.NoError(t, err, name)
		assert.Equal(t, Euclidean, k, name)
	}

	k, err := Parse("DIAGONAL")
	require.NoError(t, err)
	assert.Equal(t, Octile, k)
}

func TestDistanceIdentities(t *testing.T) {
	p := Coord{3, 4}

	for _, k := range []Kind{Manhattan, Euclidean, Octile} {
		d, err := Distance(k, p, p)
		require.NoError(t, err)
		assert.Zero(t, d, "h(p,p) must be 0 for %s", k)
	}

	a := Coord{0, 0}
	b := Coord{3, 4}

	man, _ := Distance(Manhattan, a, b)
	euc, _ := Distance(Euclidean, a, b)
	oct, _ := Distance(Octile, a, b)

	assert.InDelta(t, 7.0, man, 1e-9)
	assert.InDelta(t, 5.0, euc, 1e-9)
	assert.GreaterOrEqual(t, man, euc)
	assert.GreaterOrEqual(t, oct, euc)
}

func TestOctileSymmetricDiagonal(t *testing.T) {
	a := Coord{0, 0}
	b := Coord{2, 2}
	oct, err := Distance(Octile, a, b)
	require.NoError(t, err)
	assert.InDelta(t, 2*1.4142135623730951, oct, 1e-9)
}
