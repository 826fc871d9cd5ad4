package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ryancerium/scarp"
	"github.com/ryancerium/scarp/binding"
)

// ---------------------------------------------------------------------------
// Request and response types
// ---------------------------------------------------------------------------

type HealthReq struct{}

type HealthResp struct {
	Status string `json:"status"`
}

type ListRoutesReq struct {
	MinDistance scarp.Decimal[Meter] `query:"min_distance" default:"0"`
	Limit       scarp.Uint32[Count]  `query:"limit" default:"50"`
}

type ListRoutesResp struct {
	Routes []Route `json:"routes"`
}

type CreateRouteReq struct {
	Body struct {
		Name     scarp.String[RouteName]   `json:"name"`
		Distance scarp.Decimal[Meter]      `json:"distance"`
		Unit     *scarp.String[UnitSymbol] `json:"unit"`
		Climb    *scarp.Float64[Meter]     `json:"climb"`
	}
}

// Validate implements binding.SelfValidator.
func (r *CreateRouteReq) Validate() error {
	if r.Body.Name.TrimSpace().IsEmpty() {
		return errors.New("name is required")
	}
	if r.Body.Distance.Raw().IsNegative() {
		return errors.New("distance must not be negative")
	}
	return nil
}

type RouteByIDReq struct {
	ID scarp.Int64[RouteID] `path:"id"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

type routeHandlers struct {
	store *routeStore
}

func handleHealth(context.Context, *HealthReq) (*HealthResp, error) {
	return &HealthResp{Status: "ok"}, nil
}

func (h routeHandlers) list(ctx context.Context, req *ListRoutesReq) (*ListRoutesResp, error) {
	routes, err := h.store.list(ctx, req.MinDistance, req.Limit)
	if err != nil {
		return nil, err
	}
	return &ListRoutesResp{Routes: routes}, nil
}

func (h routeHandlers) create(ctx context.Context, req *CreateRouteReq) (*Route, error) {
	unit := scarp.NewString[UnitSymbol]("m")
	if req.Body.Unit != nil {
		unit = *req.Body.Unit
	}
	r, err := h.store.create(ctx, Route{
		Name:     req.Body.Name.TrimSpace(),
		Distance: req.Body.Distance,
		Unit:     unit,
		Climb:    req.Body.Climb,
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (h routeHandlers) get(ctx context.Context, req *RouteByIDReq) (*Route, error) {
	r, err := h.store.get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (h routeHandlers) delete(ctx context.Context, req *RouteByIDReq) (*struct{}, error) {
	return nil, h.store.delete(ctx, req.ID)
}

func newMux(store *routeStore, logger *slog.Logger) *http.ServeMux {
	h := routeHandlers{store: store}
	common := []binding.Option{
		binding.WithLogger(logger),
		binding.WithMaxBodyBytes(1 << 20),
		binding.WithRateLimit(binding.RateLimit{Rate: 20, Burst: 40}),
	}

	mux := http.NewServeMux()
	mux.Handle("GET /v1/health", binding.Handler(handleHealth, binding.WithLogger(logger)))
	mux.Handle("GET /v1/routes", binding.Handler(h.list, common...))
	mux.Handle("POST /v1/routes", binding.Handler(h.create, append(common, binding.WithStatus(http.StatusCreated))...))
	mux.Handle("GET /v1/routes/{id}", binding.Handler(h.get, common...))
	mux.Handle("DELETE /v1/routes/{id}", binding.Handler(h.delete, common...))
	return mux
}
