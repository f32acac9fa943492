package riskengine

import (
	"context"
	"testing"

	"github.com/rossini/evac-planner/internal/config"
	"github.com/rossini/evac-planner/internal/gridmodel"
	"github.com/rossini/evac-planner/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGrid(t *testing.T, n int, cellSizeCm float64) *gridmodel.Grid {
	t.Helper()
	cells := make([]gridmodel.CellSpec, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			id := row*n + col
			var conns []int
			if col > 0 {
				conns = append(conns, id-1)
			}
			if col < n-1 {
				conns = append(conns, id+1)
			}
			if row > 0 {
				conns = append(conns, id-n)
			}
			if row < n-1 {
				conns = append(conns, id+n)
			}
			cells = append(cells, gridmodel.CellSpec{ID: id, Connections: conns})
		}
	}
	spec := gridmodel.Spec{
		Rows: n, Columns: n,
		CellSizeCm:         cellSizeCm,
		MillimeterPerPixel: 1,
		SafeZones:          []int{n*n - 1},
		Cells:              cells,
	}
	g, err := gridmodel.NewGrid(spec, gridmodel.Anchor{})
	require.NoError(t, err)
	return g
}

// constantSensor builds a sensor whose series has a constant acceleration
// level, so PGA = that level exactly (matches scenario R1's "constant-
// amplitude pulse yielding PGA = 0.3").
func constantSensor(level float64, n int) Sensor {
	acc := make([]float64, n)
	t := make([]float64, n)
	for i := range acc {
		acc[i] = level
		t[i] = float64(i) * 0.01
	}
	return Sensor{Name: "s1", Acceleration: acc, Time: t}
}

// TestScenarioR1SingleComponentCoreAndHalo matches spec.md scenario R1:
// mean=0.3, dispersion=0.4, PGA=0.3 -> risk level 6, halo risk 3.
func TestScenarioR1SingleComponentCoreAndHalo(t *testing.T) {
	g := buildGrid(t, 30, 10)
	constants := config.DefaultConstants()
	e := New(g, constants)

	components := []store.Component{
		{
			ID: "622204f35ed4ed1b0bb72c18",
			Locations: []store.Location{
				{TopLeftH: 90, TopLeftV: 90, BottomRightH: 110, BottomRightV: 110, InfluenceRadiusCm: 40},
			},
			Damages:   []store.Damage{{Mean: 0.3, Dispersion: 0.4}},
			Fragility: store.Fragility{IMName: "pga"},
		},
	}
	inv := store.NewMemoryInventory()
	inv.Seed("map_a", components)

	result, snapshot, err := e.ComputeCold(context.Background(), inv, "map_a", []Sensor{constantSensor(0.3, 50)}, nil)
	require.NoError(t, err)

	foundCore, foundHalo := false, false
	for _, v := range result.Risk {
		if v == 6 {
			foundCore = true
		}
		if v == 3 {
			foundHalo = true
		}
	}
	assert.True(t, foundCore, "expected at least one core cell at risk 6")
	assert.True(t, foundHalo, "expected at least one halo cell at risk 3")
	assert.True(t, result.IsStructural(0) || len(result.Structural) > 0, "component id is in default STRUCTURE_IDS")

	require.Len(t, snapshot.Components, 1)
}

// TestScenarioR2TwoComponentsMergeToHigherRisk follows spec.md scenario R2
// with different levels: two components share one footprint; at PGA 0.3,
// "c-low" (mean 1.0) evaluates to risk 0 and "c-high" (mean 0.05) to risk
// 9, so every stamped cell carries the higher value, 9.
func TestScenarioR2TwoComponentsMergeToHigherRisk(t *testing.T) {
	g := buildGrid(t, 20, 10)
	e := New(g, config.DefaultConstants())

	overlap := store.Location{TopLeftH: 95, TopLeftV: 95, BottomRightH: 105, BottomRightV: 105, InfluenceRadiusCm: 0}

	components := []store.Component{
		{ID: "c-low", Locations: []store.Location{overlap}, Damages: []store.Damage{{Mean: 1.0, Dispersion: 0.4}}, Fragility: store.Fragility{IMName: "pga"}},
		{ID: "c-high", Locations: []store.Location{overlap}, Damages: []store.Damage{{Mean: 0.05, Dispersion: 0.4}}, Fragility: store.Fragility{IMName: "pga"}},
	}
	inv := store.NewMemoryInventory()
	inv.Seed("map_a", components)

	result, _, err := e.ComputeCold(context.Background(), inv, "map_a", []Sensor{constantSensor(0.3, 50)}, nil)
	require.NoError(t, err)

	overlapCellFound := false
	for _, v := range result.Risk {
		if v > 0 {
			overlapCellFound = true
			assert.Equal(t, 9, v)
		}
	}
	assert.True(t, overlapCellFound)
}

// TestMeanZeroYieldsZeroRisk matches spec.md scenario R3.
func TestMeanZeroYieldsZeroRisk(t *testing.T) {
	g := buildGrid(t, 10, 10)
	e := New(g, config.DefaultConstants())

	components := []store.Component{
		{ID: "c1", Locations: []store.Location{{TopLeftH: 10, TopLeftV: 10, BottomRightH: 20, BottomRightV: 20}}, Damages: []store.Damage{{Mean: 0, Dispersion: 0.4}}, Fragility: store.Fragility{IMName: "pga"}},
	}
	inv := store.NewMemoryInventory()
	inv.Seed("map_a", components)

	result, _, err := e.ComputeCold(context.Background(), inv, "map_a", []Sensor{constantSensor(0.3, 50)}, nil)
	require.NoError(t, err)
	for _, v := range result.Risk {
		assert.Equal(t, 0, v)
	}
}

func TestComputeWarmMatchesComputeColdForSameInventory(t *testing.T) {
	g := buildGrid(t, 15, 10)
	e := New(g, config.DefaultConstants())

	components := []store.Component{
		{ID: "c1", Locations: []store.Location{{TopLeftH: 10, TopLeftV: 10, BottomRightH: 30, BottomRightV: 30, InfluenceRadiusCm: 10}}, Damages: []store.Damage{{Mean: 0.3, Dispersion: 0.4}}, Fragility: store.Fragility{IMName: "pga"}},
	}
	inv := store.NewMemoryInventory()
	inv.Seed("map_a", components)

	sensors := []Sensor{constantSensor(0.3, 50)}

	cold, snapshot, err := e.ComputeCold(context.Background(), inv, "map_a", sensors, nil)
	require.NoError(t, err)

	warm, err := e.ComputeWarm(snapshot, sensors, nil)
	require.NoError(t, err)

	assert.Equal(t, cold.Risk, warm.Risk)
}

func TestStampAllRejectsEmptySensors(t *testing.T) {
	g := buildGrid(t, 5, 10)
	e := New(g, config.DefaultConstants())
	_, err := e.stampAll(nil, nil, nil)
	require.ErrorIs(t, err, ErrNoSensors)
}

func TestStampAllRejectsUnlocatedMultiSensor(t *testing.T) {
	g := buildGrid(t, 5, 10)
	e := New(g, config.DefaultConstants())
	components := []store.Component{
		{ID: "c1", Locations: []store.Location{{TopLeftH: 1, TopLeftV: 1, BottomRightH: 2, BottomRightV: 2}}, Damages: []store.Damage{{Mean: 0.3, Dispersion: 0.4}}, Fragility: store.Fragility{IMName: "pga"}},
	}
	_, err := e.stampAll(components, []Sensor{{Acceleration: []float64{1, 2, 3}, Time: []float64{0, 1, 2}}, {Acceleration: []float64{1, 2, 3}, Time: []float64{0, 1, 2}, HasLocation: true}}, nil)
	require.ErrorIs(t, err, ErrSensorLocationRequired)
}

func TestNearestSensorSelectsClosestByCentroid(t *testing.T) {
	g := buildGrid(t, 10, 10)
	e := New(g, config.DefaultConstants())

	c := store.Component{Locations: []store.Location{{TopLeftH: 0, TopLeftV: 0, BottomRightH: 10, BottomRightV: 10}}}
	near := Sensor{Name: "near", HasLocation: true, H: 5, V: 5}
	far := Sensor{Name: "far", HasLocation: true, H: 1000, V: 1000}

	got, err := e.nearestSensor(c, []Sensor{far, near})
	require.NoError(t, err)
	assert.Equal(t, "near", got.Name)
}
