package main

import (
	"context"
	"fmt"
	"time"

	"campus-placement-backend/internal/config"
	"campus-placement-backend/internal/database"
	"campus-placement-backend/internal/logger"

	"github.com/cenkalti/backoff/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// app carries what every subcommand needs once the root command has run
type app struct {
	cfg       *config.Config
	waitForDB uint
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Maintenance tools for accounts and the talent relationship ledger",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				logrus.Debug("No .env file found, using system environment variables")
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger.Setup(cfg.LogLevel)
			a.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().UintVar(&a.waitForDB, "wait-for-db", 30, "Connection attempts, one second apart, before giving up on the database")

	cmd.AddCommand(newSeedCmd(a))
	cmd.AddCommand(newRebuildCmd(a))
	cmd.AddCommand(newResolveCmd(a))
	return cmd
}

// openDB connects with retries so the tool can run while a dockerized Postgres is still starting
func (a *app) openDB(ctx context.Context, migrate bool) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    gormlogger.Silent,
		SkipMigrate: !migrate,
	}

	attempt := uint(0)
	db, err := backoff.Retry(ctx, func() (*gorm.DB, error) {
		attempt++
		db, err := database.Initialize(a.cfg.DatabaseURL, opts)
		if err != nil && (attempt%10 == 0 || attempt == a.waitForDB) {
			logrus.WithError(err).WithField("attempt", attempt).Warn("Database not ready")
		}
		return db, err
	}, backoff.WithBackOff(backoff.NewConstantBackOff(time.Second)), backoff.WithMaxTries(max(a.waitForDB, 1)))
	if err != nil {
		return nil, fmt.Errorf("database not ready after %d attempts: %w", attempt, err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
