package product

import (
	"context"

	"github.com/fekuna/omnipos-scm-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product, actorID int64) error
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product, actorID int64) error
	// Delete removes the product's inventory rows before the product itself.
	Delete(ctx context.Context, sku string, actorID int64) error

	IsSKUUnique(ctx context.Context, sku string) (bool, error)
}
