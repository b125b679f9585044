package tactics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_Catalogue(t *testing.T) {
	b := NewBook(Params{})
	names := Names()
	require.Len(t, names, 11)
	seen := map[string]bool{}
	for _, n := range names {
		assert.False(t, seen[n], "duplicate %s", n)
		seen[n] = true
		s, err := b.New(n)
		require.NoError(t, err)
		assert.Equal(t, n, s.Name())
	}
	assert.ElementsMatch(t, names, Sorted())
	assert.IsNonDecreasing(t, Sorted())
}

func TestBook_Unknown(t *testing.T) {
	b := NewBook(Params{})
	_, err := b.New("catenaccio")
	assert.ErrorIs(t, err, ErrUnknownTactic)

	_, err = b.Resolve([]string{ShortPassName, "catenaccio"})
	assert.ErrorIs(t, err, ErrUnknownTactic)

	got, err := b.Resolve([]string{ShortPassName, VoronoiName})
	require.NoError(t, err)
	assert.Equal(t, Voronoi{Grid: 20}, got[1])
}

func TestBook_GridParam(t *testing.T) {
	s, err := NewBook(Params{Grid: 6}).New(VoronoiName)
	require.NoError(t, err)
	assert.Equal(t, 6, s.(Voronoi).grid())
	assert.Equal(t, 20, Voronoi{}.grid())
}
