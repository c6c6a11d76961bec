package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/response"
	"github.com/fekuna/omnipos-scm-service/internal/route"
	"github.com/fekuna/omnipos-scm-service/internal/route/dto"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RouteHandler struct {
	uc     route.UseCase
	logger logger.ZapLogger
}

func NewRouteHandler(uc route.UseCase, log logger.ZapLogger) *RouteHandler {
	return &RouteHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *RouteHandler) Routes(r chi.Router) {
	r.Get("/", h.ListRoutes)
	r.Get("/cheapest", h.Cheapest)
	r.Get("/suggest-origin", h.SuggestOrigin)
	r.Get("/valid-origins", h.ValidOrigins)
	r.Get("/customer-locations", h.CustomerLocations)
	r.Get("/locations", h.Locations)
}

func (h *RouteHandler) AdminRoutes(r chi.Router) {
	r.Post("/", h.AddRoute)
}

func (h *RouteHandler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListRoutes(r.Context())
	if err != nil {
		h.logger.Error("failed to list routes", zap.Error(err))
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

// Cheapest answers GET /routes/cheapest?origin=..&destination=..
func (h *RouteHandler) Cheapest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	origin, destination := q.Get("origin"), q.Get("destination")

	details, err := h.uc.CheapestRouteDetails(r.Context(), origin, destination)
	if err != nil {
		response.Error(w, err)
		return
	}
	if details == nil {
		response.Error(w, &model.RouteNotFoundError{Origin: origin, Destination: destination})
		return
	}
	response.Success(w, details)
}

func (h *RouteHandler) SuggestOrigin(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s, err := h.uc.SuggestCheapestOrigin(r.Context(), q.Get("sku"), q.Get("destination"))
	if err != nil {
		response.Error(w, err)
		return
	}
	if s == nil {
		response.Message(w, http.StatusNotFound, "no stocked origin with a route to destination")
		return
	}
	response.Success(w, s)
}

func (h *RouteHandler) ValidOrigins(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.uc.ValidOrigins(r.Context(), q.Get("destination"), q.Get("sku"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

func (h *RouteHandler) CustomerLocations(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.CustomerLocations(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

func (h *RouteHandler) Locations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.uc.Locations(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, locs)
}

func (h *RouteHandler) AddRoute(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateRouteInput
	if err := response.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	rt, err := h.uc.AddRoute(r.Context(), &input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, rt)
}
