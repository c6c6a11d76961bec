package report

import (
	"context"

	"github.com/fekuna/omnipos-scm-service/internal/model"
)

type UseCase interface {
	GenerateSummary(ctx context.Context) (*model.SummaryReport, error)
	SaveSnapshot(ctx context.Context, title string) (*model.ReportSnapshot, error)
	ListSnapshots(ctx context.Context) ([]model.ReportSnapshot, error)
}
