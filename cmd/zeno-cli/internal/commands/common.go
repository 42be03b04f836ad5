package commands

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/config"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openDatabase connects to the database named by the ZENO_DB_* environment
// variables and runs migrations.
func openDatabase() (*gorm.DB, error) {
	settings := config.DatabaseSettings{
		Type: os.Getenv("ZENO_DB_TYPE"),
		DSN:  os.Getenv("ZENO_DB_DSN"),
		Name: os.Getenv("ZENO_DB_NAME"),
	}
	if settings.Type == "" {
		settings.Type = config.SqliteDbType
	}
	if settings.Type == config.SqliteDbType && settings.DSN == "" {
		settings.DSN = "zeno.db"
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database settings: %w", err)
	}

	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
