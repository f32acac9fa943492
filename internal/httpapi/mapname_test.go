package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeMapNameNilFallsBackToDefault(t *testing.T) {
	name, key := CanonicalizeMapName(nil, "map_a")
	assert.Equal(t, MapA, name)
	assert.Equal(t, "map_a", key)
}

func TestCanonicalizeMapNameRealVariants(t *testing.T) {
	for _, raw := range []string{"real", "map_a", "map-a", "this is real data"} {
		name, _ := CanonicalizeMapName(&raw, "map_a")
		assert.Equal(t, MapA, name, raw)
	}
}

func TestCanonicalizeMapNameFictitiousVariants(t *testing.T) {
	for _, raw := range []string{"fictitious", "map_b", "map-b", "totally fictitious scenario"} {
		name, _ := CanonicalizeMapName(&raw, "map_a")
		assert.Equal(t, MapB, name, raw)
	}
}

func TestCanonicalizeMapNameUnknownDefaultsToMapA(t *testing.T) {
	raw := "nonsense"
	name, _ := CanonicalizeMapName(&raw, "map_a")
	assert.Equal(t, MapA, name)
}
