package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-scm-service/internal/auth"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/report"
	"go.uber.org/zap"
)

type reportUseCase struct {
	repo   report.Repository
	logger logger.ZapLogger
}

func NewReportUseCase(repo report.Repository, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *reportUseCase) GenerateSummary(ctx context.Context) (*model.SummaryReport, error) {
	total, err := uc.repo.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	processed, err := uc.repo.CountOrdersByStatus(ctx, model.StatusProcessed)
	if err != nil {
		return nil, fmt.Errorf("count processed orders: %w", err)
	}
	lowStock, err := uc.repo.CountLowStockSKUs(ctx)
	if err != nil {
		return nil, fmt.Errorf("count low stock: %w", err)
	}
	cost, err := uc.repo.SumLogisticsCost(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum logistics cost: %w", err)
	}

	return &model.SummaryReport{
		TotalOrders:        total,
		ProcessedOrders:    processed,
		LowStockItems:      lowStock,
		TotalLogisticsCost: cost,
	}, nil
}

// SaveSnapshot generates a summary and stores it as JSON under title.
func (uc *reportUseCase) SaveSnapshot(ctx context.Context, title string) (*model.ReportSnapshot, error) {
	summary, err := uc.GenerateSummary(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = "Summary " + time.Now().UTC().Format("2006-01-02 15:04")
	}
	s := &model.ReportSnapshot{Title: title, Payload: string(payload)}
	if err := uc.repo.SaveSnapshot(ctx, s, auth.ActorID(ctx)); err != nil {
		return nil, err
	}
	uc.logger.Info("report saved", zap.Int64("report_id", s.ID), zap.String("title", s.Title))
	return s, nil
}

func (uc *reportUseCase) ListSnapshots(ctx context.Context) ([]model.ReportSnapshot, error) {
	return uc.repo.ListSnapshots(ctx)
}
