package route

import (
	"context"

	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/route/dto"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	// RouteCost is the cost of the cheapest route; ok is false when the pair
	// has no route.
	RouteCost(ctx context.Context, origin, destination string) (cost decimal.Decimal, ok bool, err error)
	CheapestRouteDetails(ctx context.Context, origin, destination string) (*model.RouteDetails, error)
	SuggestCheapestOrigin(ctx context.Context, sku, destination string) (*model.OriginSuggestion, error)

	ValidOrigins(ctx context.Context, destination, sku string) ([]string, error)
	CustomerLocations(ctx context.Context) ([]string, error)
	Locations(ctx context.Context) (*dto.Locations, error)

	ListRoutes(ctx context.Context) ([]model.Route, error)
	AddRoute(ctx context.Context, input *dto.CreateRouteInput) (*model.Route, error)
}
