package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-scm-service/internal/audit"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/report"
	"github.com/fekuna/omnipos-scm-service/internal/response"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultListLimit = 200

// ReportHandler serves the admin-only views: summary reports, the audit log
// and logistics records.
type ReportHandler struct {
	uc     report.UseCase
	audit  audit.Repository
	logger logger.ZapLogger
}

func NewReportHandler(uc report.UseCase, auditRepo audit.Repository, log logger.ZapLogger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		audit:  auditRepo,
		logger: log,
	}
}

func (h *ReportHandler) AdminRoutes(r chi.Router) {
	r.Get("/reports/summary", h.Summary)
	r.Get("/reports", h.ListSnapshots)
	r.Post("/reports", h.SaveSnapshot)
	r.Get("/logs", h.ListLogs)
	r.Get("/logistics", h.ListLogistics)
}

func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.GenerateSummary(r.Context())
	if err != nil {
		h.logger.Error("failed to generate summary", zap.Error(err))
		response.Error(w, err)
		return
	}
	response.Success(w, s)
}

type saveSnapshotRequest struct {
	Title string `json:"title"`
}

func (h *ReportHandler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	var req saveSnapshotRequest
	if err := response.Decode(r, &req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	s, err := h.uc.SaveSnapshot(r.Context(), req.Title)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, s)
}

func (h *ReportHandler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListSnapshots(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

func (h *ReportHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	items, err := h.audit.ListLogs(r.Context(), defaultListLimit)
	if err != nil {
		h.logger.Error("failed to list logs", zap.Error(err))
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}

func (h *ReportHandler) ListLogistics(w http.ResponseWriter, r *http.Request) {
	items, err := h.audit.ListLogistics(r.Context(), defaultListLimit)
	if err != nil {
		h.logger.Error("failed to list logistics records", zap.Error(err))
		response.Error(w, err)
		return
	}
	response.Success(w, items)
}
