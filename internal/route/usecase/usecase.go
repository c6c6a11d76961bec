package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-scm-service/internal/auth"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/route"
	"github.com/fekuna/omnipos-scm-service/internal/route/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var errEndpointRequired = fmt.Errorf("%w: origin and destination are required", model.ErrValidation)

type routeUseCase struct {
	repo   route.Repository
	logger logger.ZapLogger
}

func NewRouteUseCase(repo route.Repository, log logger.ZapLogger) route.UseCase {
	return &routeUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *routeUseCase) RouteCost(ctx context.Context, origin, destination string) (decimal.Decimal, bool, error) {
	rt, err := uc.repo.Cheapest(ctx, model.NormalizeLocation(origin), model.NormalizeLocation(destination))
	if err != nil {
		return decimal.Zero, false, err
	}
	if rt == nil {
		return decimal.Zero, false, nil
	}
	return rt.Cost, true, nil
}

func (uc *routeUseCase) CheapestRouteDetails(ctx context.Context, origin, destination string) (*model.RouteDetails, error) {
	rt, err := uc.repo.Cheapest(ctx, model.NormalizeLocation(origin), model.NormalizeLocation(destination))
	if err != nil || rt == nil {
		return nil, err
	}
	return &model.RouteDetails{Cost: rt.Cost, Distance: rt.DistanceKM}, nil
}

func (uc *routeUseCase) SuggestCheapestOrigin(ctx context.Context, sku, destination string) (*model.OriginSuggestion, error) {
	return uc.repo.SuggestCheapestOrigin(ctx, model.NormalizeSKU(sku), model.NormalizeLocation(destination))
}

func (uc *routeUseCase) ValidOrigins(ctx context.Context, destination, sku string) ([]string, error) {
	return uc.repo.ValidOrigins(ctx, model.NormalizeLocation(destination), model.NormalizeSKU(sku))
}

func (uc *routeUseCase) CustomerLocations(ctx context.Context) ([]string, error) {
	return uc.repo.CustomerLocations(ctx)
}

func (uc *routeUseCase) Locations(ctx context.Context) (*dto.Locations, error) {
	origins, err := uc.repo.Origins(ctx)
	if err != nil {
		return nil, err
	}
	destinations, err := uc.repo.Destinations(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.Locations{Origins: origins, Destinations: destinations}, nil
}

func (uc *routeUseCase) ListRoutes(ctx context.Context) ([]model.Route, error) {
	return uc.repo.List(ctx)
}

func (uc *routeUseCase) AddRoute(ctx context.Context, input *dto.CreateRouteInput) (*model.Route, error) {
	rt := &model.Route{
		Origin:      model.NormalizeLocation(input.Origin),
		Destination: model.NormalizeLocation(input.Destination),
		Cost:        input.Cost,
		DistanceKM:  input.DistanceKM,
	}
	switch {
	case rt.Origin == "" || rt.Destination == "":
		return nil, errEndpointRequired
	case rt.Origin == rt.Destination:
		return nil, model.ErrInvalidMove
	case rt.Cost.IsNegative() || rt.DistanceKM.IsNegative():
		return nil, model.ErrInvalidCost
	}
	rt.OriginKind = model.ClassifyLocation(rt.Origin)
	rt.DestinationKind = model.ClassifyLocation(rt.Destination)

	if err := uc.repo.Create(ctx, rt, auth.ActorID(ctx)); err != nil {
		return nil, err
	}
	uc.logger.Info("route added",
		zap.String("origin", rt.Origin),
		zap.String("destination", rt.Destination),
		zap.String("cost", rt.Cost.StringFixed(2)),
	)
	return rt, nil
}
