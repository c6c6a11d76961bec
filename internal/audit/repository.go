package audit

import (
	"context"

	"github.com/fekuna/omnipos-scm-service/internal/model"
)

type Repository interface {
	WriteLog(ctx context.Context, userID int64, action string) error
	ListLogs(ctx context.Context, limit int) ([]model.LogEntry, error)
	ListLogistics(ctx context.Context, limit int) ([]model.LogisticsRecord, error)
}
