package route

import (
	"context"

	"github.com/fekuna/omnipos-scm-service/internal/model"
)

type Repository interface {
	// Cheapest returns the lowest-cost route for the pair, or nil when none exists.
	Cheapest(ctx context.Context, origin, destination string) (*model.Route, error)
	List(ctx context.Context) ([]model.Route, error)
	Create(ctx context.Context, route *model.Route, actorID int64) error

	ValidOrigins(ctx context.Context, destination, sku string) ([]string, error)
	CustomerLocations(ctx context.Context) ([]string, error)
	Origins(ctx context.Context) ([]string, error)
	Destinations(ctx context.Context) ([]string, error)
	SuggestCheapestOrigin(ctx context.Context, sku, destination string) (*model.OriginSuggestion, error)
}
