package order

import (
	"context"

	"github.com/fekuna/omnipos-scm-service/internal/model"
)

type Repository interface {
	// Create inserts order. A non-empty eventID is stored and must be unique.
	Create(ctx context.Context, order *model.Order, eventID string) error
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	FindByEventID(ctx context.Context, eventID string) (*model.Order, error)
	// List returns orders newest first. An empty customer lists every order.
	List(ctx context.Context, customer string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
