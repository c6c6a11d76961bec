package handler

import (
	"net/http"
	"strconv"

	"github.com/fekuna/omnipos-scm-service/internal/auth"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/order"
	"github.com/fekuna/omnipos-scm-service/internal/order/dto"
	"github.com/fekuna/omnipos-scm-service/internal/response"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OrderHandler) Routes(r chi.Router) {
	r.Get("/", h.ListOrders)
	r.Post("/", h.PlaceOrder)
	r.Get("/{id}", h.GetOrder)
}

func (h *OrderHandler) AdminRoutes(r chi.Router) {
	r.Put("/{id}/status", h.UpdateStatus)
	r.Delete("/{id}", h.DeleteOrder)
	r.Post("/{id}/fulfill", h.FulfillOrder)
	r.Post("/{id}/move", h.MoveToCustomer)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	u := auth.GetUser(r.Context())
	if u == nil {
		response.Unauthorized(w)
		return
	}

	items, err := h.uc.ListOrders(r.Context(), u.Username, u.Role)
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

// PlaceOrder records a Pending order. Users always order under their own name.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var input dto.PlaceOrderInput
	if err := response.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if u := auth.GetUser(r.Context()); u != nil && u.Role == model.RoleUser {
		input.CustomerName = u.Username
	}

	o, err := h.uc.PlaceOrder(r.Context(), &input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, o)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	o, err := h.uc.GetOrder(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	if u := auth.GetUser(r.Context()); u != nil && u.Role == model.RoleUser && o.CustomerName != u.Username {
		response.Error(w, model.ErrOrderNotFound)
		return
	}
	response.Success(w, o)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	var input dto.UpdateStatusInput
	if err := response.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	input.ID = id

	if err := h.uc.UpdateStatus(r.Context(), &input); err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusOK, "order status updated")
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	if err := h.uc.DeleteOrder(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FulfillOrder sources the stored order's sku and quantity.
func (h *OrderHandler) FulfillOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	o, err := h.uc.GetOrder(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	result, err := h.uc.FulfillOrder(r.Context(), o.ID, o.SKU, o.Quantity)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, result)
}

func (h *OrderHandler) MoveToCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	var input dto.MoveToCustomerInput
	if err := response.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	input.OrderID = id

	rec, err := h.uc.MoveOrderToCustomer(r.Context(), &input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, rec)
}

func orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "invalid order id")
		return 0, false
	}
	return id, true
}
