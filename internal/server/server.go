package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-scm-service/internal/auth"
	forecastHandler "github.com/fekuna/omnipos-scm-service/internal/forecast/handler"
	inventoryHandler "github.com/fekuna/omnipos-scm-service/internal/inventory/handler"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/metrics"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	orderHandler "github.com/fekuna/omnipos-scm-service/internal/order/handler"
	productHandler "github.com/fekuna/omnipos-scm-service/internal/product/handler"
	reportHandler "github.com/fekuna/omnipos-scm-service/internal/report/handler"
	"github.com/fekuna/omnipos-scm-service/internal/response"
	routeHandler "github.com/fekuna/omnipos-scm-service/internal/route/handler"
	userHandler "github.com/fekuna/omnipos-scm-service/internal/user/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Resetter restores the seeded demo state.
type Resetter interface {
	Reset(ctx context.Context) error
}

type Handlers struct {
	Auth      *userHandler.AuthHandler
	Products  *productHandler.ProductHandler
	Inventory *inventoryHandler.InventoryHandler
	Routes    *routeHandler.RouteHandler
	Orders    *orderHandler.OrderHandler
	Forecasts *forecastHandler.ForecastHandler
	Reports   *reportHandler.ReportHandler
	Resetter  Resetter
}

// NewRouter mounts the JSON API. Every route except /auth, /healthz and
// /metrics requires a bearer token; /admin and the admin write routes
// require the Admin role.
func NewRouter(h *Handlers, tokens *auth.TokenIssuer, log logger.ZapLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metrics.Middleware)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.Message(w, http.StatusOK, "ok")
	})
	r.Handle("/metrics", metrics.Handler())
	r.Route("/auth", h.Auth.Routes)

	r.Route("/api", func(r chi.Router) {
		r.Use(Authenticate(tokens))

		r.Route("/products", func(r chi.Router) {
			h.Products.Routes(r)
			r.With(RequireRole(model.RoleAdmin)).Group(h.Products.AdminRoutes)
		})
		r.Route("/inventory", h.Inventory.Routes)
		r.Route("/routes", func(r chi.Router) {
			h.Routes.Routes(r)
			r.With(RequireRole(model.RoleAdmin)).Group(h.Routes.AdminRoutes)
		})
		r.Route("/orders", func(r chi.Router) {
			h.Orders.Routes(r)
			r.With(RequireRole(model.RoleAdmin)).Group(h.Orders.AdminRoutes)
		})
		r.Route("/forecasts", h.Forecasts.Routes)

		r.Route("/admin", func(r chi.Router) {
			r.Use(RequireRole(model.RoleAdmin))
			h.Reports.AdminRoutes(r)
			r.Post("/reset", resetHandler(h.Resetter, log))
		})
	})
	return r
}

func resetHandler(resetter Resetter, log logger.ZapLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := resetter.Reset(r.Context()); err != nil {
			log.Error("reset failed", zap.Error(err))
			response.Error(w, err)
			return
		}
		response.Message(w, http.StatusOK, "simulation reset to initial state")
	}
}

type Server struct {
	httpServer *http.Server
	logger     logger.ZapLogger
}

func New(addr string, handler http.Handler, log logger.ZapLogger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: log,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
