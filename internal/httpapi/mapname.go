package httpapi

import "strings"

// Canonical scene names, matching original_source/src/app.py's MAP_A/MAP_B
// constants.
const (
	MapA = "2-Navigation_map_v1.0"
	MapB = "2-NavigationFile"
)

// CanonicalizeMapName resolves a raw map-name request field into one of the
// two canonical scene names, matching original_source/src/app.py's
// _get_map_name exactly: nil falls back to defaultMapName; a value equal to
// or containing "real", or equal to "map_a"/"map-a", selects Map A; a value
// equal to or containing "fictitious", or equal to "map_b"/"map-b", selects
// Map B; anything else defaults to Map A.
func CanonicalizeMapName(raw *string, defaultMapName string) (mapName, cacheKey string) {
	name := defaultMapName
	cacheKey = defaultMapName
	if raw != nil {
		name = *raw
		cacheKey = *raw
	}

	switch {
	case name == "real" || name == "map_a" || name == "map-a" || strings.Contains(name, "real"):
		return MapA, cacheKey
	case name == "fictitious" || name == "map_b" || name == "map-b" || strings.Contains(name, "fictitious"):
		return MapB, cacheKey
	default:
		return MapA, cacheKey
	}
}
