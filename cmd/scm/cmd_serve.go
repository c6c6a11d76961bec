package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-scm-service/internal/auth"
	"github.com/fekuna/omnipos-scm-service/internal/broker"
	"github.com/fekuna/omnipos-scm-service/internal/cache"
	"github.com/fekuna/omnipos-scm-service/internal/database"
	"github.com/fekuna/omnipos-scm-service/internal/order"
	"github.com/fekuna/omnipos-scm-service/internal/order/listener"
	"github.com/fekuna/omnipos-scm-service/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// scm serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and, when enabled, the order listener",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, appLogger, db, err := boot()
		if err != nil {
			return err
		}
		defer db.Close()
		defer appLogger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := database.Migrate(ctx, db); err != nil {
			appLogger.Error("Could not migrate database", zap.Error(err))
			return err
		}

		// Redis is optional; without it fulfillment runs unlocked.
		var locker order.Locker
		if cfg.Redis.Enabled {
			redisClient, err := cache.NewRedisClient(&cache.Config{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err != nil {
				appLogger.Error("Could not connect to Redis", zap.Error(err))
				return err
			}
			defer redisClient.Close()
			locker = redisClient
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}

		tokens := auth.NewTokenIssuer(cfg.JWT.SecretKey, time.Duration(cfg.JWT.TTLHours)*time.Hour)
		app := server.Wire(db, tokens, locker, appLogger)

		if cfg.Kafka.Enabled {
			kafkaConsumer := broker.NewConsumer(&broker.Config{
				Brokers: cfg.Kafka.Brokers,
				Topic:   cfg.Kafka.Topic,
				GroupID: cfg.Kafka.GroupID,
			})
			defer kafkaConsumer.Close()
			appLogger.Info("Connected to Kafka Consumer",
				zap.Strings("brokers", cfg.Kafka.Brokers),
				zap.String("topic", cfg.Kafka.Topic),
			)
			go listener.NewOrderListener(kafkaConsumer, app.Orders, appLogger).Start(ctx)
		}

		port := cfg.Server.HTTPPort
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		router := server.NewRouter(app.Handlers, tokens, appLogger)
		if err := server.New(port, router, appLogger).Run(ctx); err != nil {
			appLogger.Error("HTTP server failed", zap.Error(err))
			return err
		}
		appLogger.Info("Server stopped")
		return nil
	},
}
