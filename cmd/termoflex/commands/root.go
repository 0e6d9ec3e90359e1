package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/termoflexpro/termoflex-store/config"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"go.uber.org/zap"
)

var (
	// Global flags
	driver string
	dsn    string

	cfg       *config.Config
	appLogger logger.ZapLogger
)

var rootCmd = &cobra.Command{
	Use:   "termoflex",
	Short: "TermoFlexPro store schema tooling",
	Long: `Manage the TermoFlexPro relational schema.

Subcommands:
  migrate  - Apply, roll back or inspect schema migrations
  seed     - Load the reference dataset`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load() // Load .env file if it exists
		cfg = config.LoadEnv()
		if driver != "" {
			cfg.Database.Driver = driver
		}
		if dsn != "" {
			cfg.Database.DSN = dsn
		}
		appLogger = newLogger(cfg)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = appLogger.Sync()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Database driver: postgres or sqlite (default $DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Connection string, overrides the per-driver settings (default $DB_DSN)")
}

func newLogger(cfg *config.Config) logger.ZapLogger {
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
	}
	return logger.NewZapLogger(logConfig)
}

func databaseConfig(cfg *config.Config) *database.Config {
	return &database.Config{
		Driver:          database.Dialect(cfg.Database.Driver),
		DSN:             cfg.Database.DSN,
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		SQLitePath:      cfg.SQLite.Path,
		BusyTimeout:     cfg.SQLite.BusyTimeout,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	}
}

func connect(ctx context.Context) (*sqlx.DB, error) {
	db, err := database.Open(ctx, databaseConfig(cfg))
	if err != nil {
		appLogger.Error("Could not connect to database", zap.Error(err))
		return nil, err
	}
	appLogger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
	return db, nil
}
