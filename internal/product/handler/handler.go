package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/product"
	"github.com/fekuna/omnipos-scm-service/internal/product/dto"
	"github.com/fekuna/omnipos-scm-service/internal/response"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

// Routes mounts read routes for every user; writes are mounted by AdminRoutes.
func (h *ProductHandler) Routes(r chi.Router) {
	r.Get("/", h.ListProducts)
	r.Get("/{sku}", h.GetProduct)
}

func (h *ProductHandler) AdminRoutes(r chi.Router) {
	r.Post("/", h.CreateProduct)
	r.Put("/{sku}", h.UpdateProduct)
	r.Delete("/{sku}", h.DeleteProduct)
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.GetProduct(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, p)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateProductInput
	if err := response.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	p, err := h.uc.CreateProduct(r.Context(), &input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, p)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateProductInput
	if err := response.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	input.SKU = chi.URLParam(r, "sku")

	p, err := h.uc.UpdateProduct(r.Context(), &input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, p)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteProduct(r.Context(), chi.URLParam(r, "sku")); err != nil {
		response.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
