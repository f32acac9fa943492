package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMostSevereDamagePicksLargestMean(t *testing.T) {
	c := Component{Damages: []Damage{{Mean: 0.1, Dispersion: 0.3}, {Mean: 0.5, Dispersion: 0.4}, {Mean: 0.3, Dispersion: 0.2}}}
	d, ok := c.MostSevereDamage()
	require.True(t, ok)
	assert.Equal(t, 0.5, d.Mean)
}

func TestMostSevereDamageEmpty(t *testing.T) {
	c := Component{}
	_, ok := c.MostSevereDamage()
	assert.False(t, ok)
}

func TestCentroidAveragesLocationCentres(t *testing.T) {
	c := Component{Locations: []Location{
		{TopLeftH: 0, TopLeftV: 0, BottomRightH: 10, BottomRightV: 10},
		{TopLeftH: 20, TopLeftV: 20, BottomRightH: 30, BottomRightV: 30},
	}}
	h, v, ok := c.Centroid()
	require.True(t, ok)
	assert.InDelta(t, 15, h, 1e-9)
	assert.InDelta(t, 15, v, 1e-9)
}

func TestMemoryInventorySeedAndFetch(t *testing.T) {
	inv := NewMemoryInventory()
	inv.Seed("map_a", []Component{{ID: "c1"}, {ID: "c2"}})

	got, err := inv.Components(context.Background(), "map_a")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMemoryInventoryUnknownMapErrors(t *testing.T) {
	inv := NewMemoryInventory()
	_, err := inv.Components(context.Background(), "unknown")
	require.Error(t, err)
}
