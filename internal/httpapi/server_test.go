package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rossini/evac-planner/internal/config"
	"github.com/rossini/evac-planner/internal/gridmodel"
	"github.com/rossini/evac-planner/internal/riskengine"
	"github.com/rossini/evac-planner/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGrid(t *testing.T, n int) *gridmodel.Grid {
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
		CellSizeCm:         10,
		MillimeterPerPixel: 1,
		SafeZones:          []int{n*n - 1},
		Cells:              cells,
	}
	g, err := gridmodel.NewGrid(spec, gridmodel.Anchor{})
	require.NoError(t, err)
	return g
}

// singleGridSource always resolves to the same grid/engine regardless of
// map name, sufficient for exercising the handler in isolation.
type singleGridSource struct {
	grid   *gridmodel.Grid
	engine *riskengine.Engine
}

func (s singleGridSource) Engine(string) (*riskengine.Engine, *gridmodel.Grid, error) {
	return s.engine, s.grid, nil
}

func newTestServer(t *testing.T, n int) (*Server, *store.MemoryInventory) {
	t.Helper()
	grid := buildGrid(t, n)
	engine := riskengine.New(grid, config.DefaultConstants())
	inv := store.NewMemoryInventory()
	inv.Seed(MapA, []store.Component{
		{
			ID:        "622204f35ed4ed1b0bb72c18",
			Locations: []store.Location{{TopLeftH: 0, TopLeftV: 0, BottomRightH: 20, BottomRightV: 20, InfluenceRadiusCm: 10}},
			Damages:   []store.Damage{{Mean: 0.3, Dispersion: 0.4}},
			Fragility: store.Fragility{IMName: "pga"},
		},
	})

	srv := NewServer(":0", singleGridSource{grid: grid, engine: engine}, inv, nil, nil, "map_a", nil)
	return srv, inv
}

func constantSensorPayload(level float64, n int) SensorPayload {
	acc := make([]float64, n)
	tm := make([]float64, n)
	for i := range acc {
		acc[i] = level
		tm[i] = float64(i) * 0.01
	}
	return SensorPayload{Name: "s1", Data: [][]float64{acc, tm}}
}

func TestHandlePutRisksHappyPath(t *testing.T) {
	srv, _ := newTestServer(t, 10)

	body, err := json.Marshal(PlanningRequest{Sensors: []SensorPayload{constantSensorPayload(0.3, 50)}})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/risks", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)

	var resp PlanningResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "placeholder", resp.PersonalProtectionEquipment)
	require.Len(t, resp.Map, 2)
	assert.Equal(t, 100, len(resp.Map[0].RiskValues))
	assert.Equal(t, []int{0}, resp.Map[1].RiskValues)
}

func TestHandlePutRisksEmptySensorsIsBadRequest(t *testing.T) {
	srv, _ := newTestServer(t, 10)

	body, _ := json.Marshal(PlanningRequest{Sensors: nil})
	req := httptest.NewRequest("PUT", "/risks", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestHandlePutRisksMismatchedAmbientalLengthIsBadRequest(t *testing.T) {
	srv, _ := newTestServer(t, 10)

	body, _ := json.Marshal(PlanningRequest{
		Sensors:       []SensorPayload{constantSensorPayload(0.3, 50)},
		AmbientalRisk: []int{1, 2, 3}, // wrong length vs. 100-cell grid
	})
	req := httptest.NewRequest("PUT", "/risks", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestHandlePutRisksZeroesAmbientalAtStructuralCells(t *testing.T) {
	srv, _ := newTestServer(t, 10)

	ambiental := make([]int, 100)
	for i := range ambiental {
		ambiental[i] = 9
	}

	body, _ := json.Marshal(PlanningRequest{
		Sensors:       []SensorPayload{constantSensorPayload(0.3, 50)},
		AmbientalRisk: ambiental,
	})
	req := httptest.NewRequest("PUT", "/risks", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)

	var resp PlanningResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	combined := resp.Map[0].RiskValues
	assert.Equal(t, 9, combined[99], "non-structural cell keeps the ambiental value")
	assert.Equal(t, 6, combined[0], "structural cell drops the ambiental 9 and keeps its own risk 6")
}

func TestDecodeSensorsRejectsMultiSensorWithoutLocation(t *testing.T) {
	_, err := decodeSensors([]SensorPayload{
		{Name: "a", Data: [][]float64{{1, 2, 3}, {0, 1, 2}}},
		{Name: "b", Data: [][]float64{{1, 2, 3}, {0, 1, 2}}},
	})
	require.Error(t, err)
}

func TestDecodeSensorsRejectsMalformedData(t *testing.T) {
	_, err := decodeSensors([]SensorPayload{{Name: "a", Data: [][]float64{{1, 2, 3}}}})
	require.Error(t, err)
}
