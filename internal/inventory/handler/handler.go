package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-scm-service/internal/inventory"
	"github.com/fekuna/omnipos-scm-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/response"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) Routes(r chi.Router) {
	r.Get("/", h.ListInventory)
	r.Post("/", h.AddInventory)
	r.Put("/", h.UpdateInventory)
	r.Post("/moves", h.MoveProduct)
	r.Get("/low-stock", h.ListLowStock)
	r.Get("/locations", h.ListLocations)
	r.Get("/locations/{location}", h.ListByLocation)
	r.Get("/sku/{sku}/locations", h.LocationsForSKU)
	r.Get("/sku/{sku}/sources", h.SourcesForSKU)
	r.Get("/sku/{sku}/total", h.TotalForSKU)
}

func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListInventory(r.Context())
	if err != nil {
		h.logger.Error("failed to list inventory", zap.Error(err))
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

func (h *InventoryHandler) AddInventory(w http.ResponseWriter, r *http.Request) {
	var input dto.AddInventoryInput
	if err := response.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	inv, err := h.uc.AddInventory(r.Context(), &input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, inv)
}

func (h *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	var input dto.SetQuantityInput
	if err := response.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.uc.UpdateInventory(r.Context(), &input); err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusOK, "inventory updated")
}

func (h *InventoryHandler) MoveProduct(w http.ResponseWriter, r *http.Request) {
	var input dto.MoveInput
	if err := response.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	rec, err := h.uc.MoveProduct(r.Context(), &input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, rec)
}

func (h *InventoryHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListLowStock(r.Context())
	if err != nil {
		h.logger.Error("failed to list low stock", zap.Error(err))
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

func (h *InventoryHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListLocations(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

func (h *InventoryHandler) ListByLocation(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListByLocation(r.Context(), chi.URLParam(r, "location"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

func (h *InventoryHandler) LocationsForSKU(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.LocationsForSKU(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

func (h *InventoryHandler) SourcesForSKU(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.SourcesForSKU(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

func (h *InventoryHandler) TotalForSKU(w http.ResponseWriter, r *http.Request) {
	total, err := h.uc.TotalForSKU(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, map[string]int{"total": total})
}
