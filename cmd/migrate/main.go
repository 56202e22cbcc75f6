package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"probuilder/internal/adapter/persistence/repository"
	"probuilder/internal/infrastructure/config"
	"probuilder/internal/infrastructure/database"
	"probuilder/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Prepare the quote requests store",
		Long: `Creates the quote requests table for the configured STORE_DRIVER.

dynamodb: creates the table (hash key "id", on-demand billing) when it does not exist.
postgres, sqlite: runs the schema auto-migration.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			if err := logging.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return migrate(ctx, cfg)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "maximum time allowed for the migration")
	return cmd
}

func migrate(ctx context.Context, cfg *config.Config) error {
	switch cfg.Store.Driver {
	case config.StoreDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return err
		}
		created, err := database.EnsureDynamoDBTable(ctx, ddb, cfg.Store.Table)
		if err != nil {
			return err
		}
		if created {
			log.WithField("table", cfg.Store.Table).Info("DynamoDB table created")
		} else {
			log.WithField("table", cfg.Store.Table).Info("DynamoDB table already exists")
		}
		return nil

	case config.StoreDriverPostgres, config.StoreDriverSQLite:
		db, err := database.OpenGorm(cfg.Store)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := repository.NewQuoteRequestGormRepository(db, cfg.Store.Table).Migrate(); err != nil {
			return fmt.Errorf("auto-migrate %s: %w", cfg.Store.Table, err)
		}
		log.WithFields(log.Fields{"driver": cfg.Store.Driver, "table": cfg.Store.Table}).Info("schema migrated")
		return nil

	default:
		return fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
