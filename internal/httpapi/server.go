// Package httpapi serves the planning request surface of spec.md §6,
// translated from original_source/src/app.py's FastAPI handlers
// (_get_map_name, _calculate_risks, put_risks) onto net/http + gorilla/mux,
// structured the way niceyeti-tabular/tabular/server/server.go builds a
// server: an explicit NewServer constructor over an addr field, no
// package-level mux.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rossini/evac-planner/internal/cache"
	"github.com/rossini/evac-planner/internal/gridmodel"
	"github.com/rossini/evac-planner/internal/riskengine"
	"github.com/rossini/evac-planner/internal/store"
	"github.com/rossini/evac-planner/internal/telemetry"
)

// GridSource resolves a canonical map name to its loaded Grid and Engine,
// since each scene has its own floorplan and anchor.
type GridSource interface {
	Engine(mapName string) (*riskengine.Engine, *gridmodel.Grid, error)
}

// Server serves PUT /risks over the grids/engines provided by grids,
// backed by inventory, a best-effort cache, and an optional downstream
// navigation push.
type Server struct {
	addr       string
	grids      GridSource
	inventory  store.Inventory
	cache      cache.Store
	navigation *NavigationClient
	defaultMap string
	log        *telemetry.Logger
	router     *mux.Router
}

// NewServer wires a Server and registers its routes.
func NewServer(addr string, grids GridSource, inventory store.Inventory, c cache.Store, nav *NavigationClient, defaultMapName string, log *telemetry.Logger) *Server {
	s := &Server{
		addr:       addr,
		grids:      grids,
		inventory:  inventory,
		cache:      c,
		navigation: nav,
		defaultMap: defaultMapName,
		log:        log,
		router:     mux.NewRouter(),
	}
	s.router.HandleFunc("/risks", s.handlePutRisks).Methods(http.MethodPut)
	return s
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.addr, s.router)
}

// Handler exposes the underlying http.Handler, e.g. for httptest.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) handlePutRisks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PlanningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: malformed body: %v", ErrInvalidRequest, err))
		return
	}

	resp, err := s.computeRisks(ctx, req)
	if err != nil {
		if s.log != nil {
			s.log.Error("risk computation failed", "error", err.Error())
		}
		status := http.StatusInternalServerError
		if isClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// computeRisks implements original_source/src/app.py's put_risks +
// _calculate_risks exactly: compute structural risk, cache it, validate
// and zero the environmental vector at structural cells, combine, and
// (if a navigation client is configured) push downstream.
func (s *Server) computeRisks(ctx context.Context, req PlanningRequest) (PlanningResponse, error) {
	if len(req.Sensors) == 0 {
		return PlanningResponse{}, fmt.Errorf("%w: empty sensor list", ErrInvalidRequest)
	}

	mapName, cacheKey := CanonicalizeMapName(req.MapName, s.defaultMap)

	engine, _, err := s.grids.Engine(mapName)
	if err != nil {
		return PlanningResponse{}, fmt.Errorf("httpapi: resolving map %q: %w", mapName, err)
	}

	sensors, err := decodeSensors(req.Sensors)
	if err != nil {
		return PlanningResponse{}, err
	}

	var cachedStructural []int
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cache.StructuralRiskKey); err == nil {
			var payload struct {
				StructuralRisk []int `json:"structural_risk"`
			}
			if jsonErr := json.Unmarshal(raw, &payload); jsonErr == nil {
				cachedStructural = payload.StructuralRisk
			}
		}
	}

	var result riskengine.Result
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cache.InventoryKey(cacheKey)); err == nil {
			var snapshot riskengine.Snapshot
			if jsonErr := json.Unmarshal(raw, &snapshot); jsonErr == nil {
				r, err := engine.ComputeWarm(snapshot, sensors, cachedStructural)
				if err != nil {
					return PlanningResponse{}, err
				}
				result = r
			}
		}
	}

	if result.Risk == nil {
		r, snapshot, err := engine.ComputeCold(ctx, s.inventory, mapName, sensors, cachedStructural)
		if err != nil {
			return PlanningResponse{}, err
		}
		result = r

		if s.cache != nil {
			if data, jsonErr := json.Marshal(snapshot); jsonErr == nil {
				_ = s.cache.Set(ctx, cache.InventoryKey(cacheKey), data, cache.InventoryTTL)
			}
		}
	}

	structural := result.Risk

	if s.cache != nil {
		if data, jsonErr := json.Marshal(struct {
			StructuralRisk []int `json:"structural_risk"`
		}{structural}); jsonErr == nil {
			_ = s.cache.Set(ctx, cache.StructuralRiskKey, data, cache.StructuralRiskTTL)
		}
	}

	ambiental := req.AmbientalRisk
	if ambiental != nil && len(structural) != len(ambiental) {
		return PlanningResponse{}, fmt.Errorf("%w: risk lengths do not match, environmental: %d, structural: %d",
			ErrInvalidRequest, len(ambiental), len(structural))
	}

	combined := make([]int, len(structural))
	if ambiental != nil {
		if s.cache != nil {
			if data, jsonErr := json.Marshal(ambiental); jsonErr == nil {
				_ = s.cache.Set(ctx, cache.AmbientalRiskKey, data, cache.AmbientalRiskTTL)
			}
		}
		zeroed := make([]int, len(ambiental))
		copy(zeroed, ambiental)
		for id := range zeroed {
			if result.IsStructural(id) {
				zeroed[id] = 0
			}
		}
		for i := range combined {
			combined[i] = maxInt(structural[i], zeroed[i])
		}
	} else {
		copy(combined, structural)
	}

	resp := NewPlanningResponse(combined)

	if s.navigation != nil {
		if _, err := s.navigation.Push(ctx, resp); err != nil && s.log != nil {
			s.log.Warn("navigation push failed", "error", err.Error())
		}
	}

	return resp, nil
}

func decodeSensors(payloads []SensorPayload) ([]riskengine.Sensor, error) {
	out := make([]riskengine.Sensor, 0, len(payloads))
	for _, p := range payloads {
		if len(p.Data) != 2 {
			return nil, fmt.Errorf("%w: sensor %q data must be [acceleration, time]", ErrInvalidRequest, p.Name)
		}
		s := riskengine.Sensor{Name: p.Name, Type: p.Type, Acceleration: p.Data[0], Time: p.Data[1]}
		if p.Location != nil {
			s.HasLocation = true
			s.H, s.V = p.Location[0], p.Location[1]
		}
		out = append(out, s)
	}

	if len(out) > 1 {
		for _, s := range out {
			if !s.HasLocation {
				return nil, fmt.Errorf("%w: multiple sensors without all locations", ErrInvalidRequest)
			}
		}
	}

	return out, nil
}

func isClientError(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, struct {
		Error string `json:"error"`
	}{err.Error()})
}
