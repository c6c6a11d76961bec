package server

import (
	"github.com/fekuna/omnipos-scm-service/internal/audit"
	auditRepoPkg "github.com/fekuna/omnipos-scm-service/internal/audit/repository"
	"github.com/fekuna/omnipos-scm-service/internal/auth"
	forecastHandler "github.com/fekuna/omnipos-scm-service/internal/forecast/handler"
	forecastRepoPkg "github.com/fekuna/omnipos-scm-service/internal/forecast/repository"
	forecastUCPkg "github.com/fekuna/omnipos-scm-service/internal/forecast/usecase"
	inventoryHandler "github.com/fekuna/omnipos-scm-service/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/omnipos-scm-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-scm-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/order"
	orderHandler "github.com/fekuna/omnipos-scm-service/internal/order/handler"
	orderRepoPkg "github.com/fekuna/omnipos-scm-service/internal/order/repository"
	orderUCPkg "github.com/fekuna/omnipos-scm-service/internal/order/usecase"
	productHandler "github.com/fekuna/omnipos-scm-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-scm-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-scm-service/internal/product/usecase"
	reportHandler "github.com/fekuna/omnipos-scm-service/internal/report/handler"
	reportRepoPkg "github.com/fekuna/omnipos-scm-service/internal/report/repository"
	reportUCPkg "github.com/fekuna/omnipos-scm-service/internal/report/usecase"
	routeHandler "github.com/fekuna/omnipos-scm-service/internal/route/handler"
	routeRepoPkg "github.com/fekuna/omnipos-scm-service/internal/route/repository"
	routeUCPkg "github.com/fekuna/omnipos-scm-service/internal/route/usecase"
	"github.com/fekuna/omnipos-scm-service/internal/simulation"
	userHandler "github.com/fekuna/omnipos-scm-service/internal/user/handler"
	userRepoPkg "github.com/fekuna/omnipos-scm-service/internal/user/repository"
	userUCPkg "github.com/fekuna/omnipos-scm-service/internal/user/usecase"
	"github.com/jmoiron/sqlx"
)

// App is the wired service graph. Orders is exposed for the event listener.
type App struct {
	Handlers *Handlers
	Orders   order.UseCase
	Audit    audit.Repository
}

// Wire builds repositories, usecases and handlers over db. locker may be nil.
func Wire(db *sqlx.DB, tokens *auth.TokenIssuer, locker order.Locker, log logger.ZapLogger) *App {
	// Repositories
	auditRepo := auditRepoPkg.NewPGRepository(db)
	userRepo := userRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	routeRepo := routeRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db)
	forecastRepo := forecastRepoPkg.NewPGRepository(db)
	reportRepo := reportRepoPkg.NewPGRepository(db)

	// UseCases
	userUC := userUCPkg.NewUserUseCase(userRepo, log)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, log)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, log)
	routeUC := routeUCPkg.NewRouteUseCase(routeRepo, log)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, prodUC, invUC, routeUC, locker, log)
	forecastUC := forecastUCPkg.NewForecastUseCase(forecastRepo, invUC, log)
	reportUC := reportUCPkg.NewReportUseCase(reportRepo, log)

	return &App{
		Handlers: &Handlers{
			Auth:      userHandler.NewAuthHandler(userUC, tokens, log),
			Products:  productHandler.NewProductHandler(prodUC, log),
			Inventory: inventoryHandler.NewInventoryHandler(invUC, log),
			Routes:    routeHandler.NewRouteHandler(routeUC, log),
			Orders:    orderHandler.NewOrderHandler(orderUC, log),
			Forecasts: forecastHandler.NewForecastHandler(forecastUC, log),
			Reports:   reportHandler.NewReportHandler(reportUC, auditRepo, log),
			Resetter:  simulation.NewService(db, log),
		},
		Orders: orderUC,
		Audit:  auditRepo,
	}
}
