package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-scm-service/internal/forecast"
	"github.com/fekuna/omnipos-scm-service/internal/forecast/dto"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/response"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ForecastHandler struct {
	uc     forecast.UseCase
	logger logger.ZapLogger
}

func NewForecastHandler(uc forecast.UseCase, log logger.ZapLogger) *ForecastHandler {
	return &ForecastHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ForecastHandler) Routes(r chi.Router) {
	r.Get("/", h.ListForecasts)
	r.Post("/", h.AddForecast)
	r.Get("/gap/{sku}", h.Gap)
}

func (h *ForecastHandler) ListForecasts(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListForecasts(r.Context())
	if err != nil {
		h.logger.Error("failed to list forecasts", zap.Error(err))
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

func (h *ForecastHandler) AddForecast(w http.ResponseWriter, r *http.Request) {
	var input dto.AddForecastInput
	if err := response.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	f, err := h.uc.AddForecast(r.Context(), &input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, f)
}

func (h *ForecastHandler) Gap(w http.ResponseWriter, r *http.Request) {
	gap, err := h.uc.Gap(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, gap)
}
