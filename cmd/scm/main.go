package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fekuna/omnipos-scm-service/config"
	"github.com/fekuna/omnipos-scm-service/internal/database"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scm",
	Short: "Supply chain ledger service",
	Long:  "scm serves the inventory ledger, routing and order fulfillment API and manages its database.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(resetCmd)
}

// boot loads configuration, builds the logger and connects to the database.
func boot() (*config.Config, logger.ZapLogger, *sqlx.DB, error) {
	_ = godotenv.Load() // .env is optional
	cfg := config.LoadEnv()

	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	appLogger := logger.NewZapLogger(logConfig)

	db, err := database.Open(&database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		SQLitePath:      cfg.Database.SQLitePath,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second,
		ConnectTimeout:  time.Duration(cfg.Database.ConnectTimeout) * time.Second,
	})
	if err != nil {
		appLogger.Error("Could not connect to database", zap.Error(err))
		return nil, nil, nil, err
	}
	appLogger.Info("Connected to database",
		zap.String("driver", db.DriverName()),
		zap.String("db_name", cfg.Database.DBName),
	)
	return cfg, appLogger, db, nil
}
