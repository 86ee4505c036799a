package main

import (
	"log"

	"specialty-match/database"
	"specialty-match/internal/config"
	internaldb "specialty-match/internal/database"
	"specialty-match/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	if cfg.Store.DSN == "" {
		l.Fatal("store.dsn (or DATABASE_URL) is required to run migrations")
	}

	db, err := internaldb.NewSQLXPostgresDB(cfg.Store.DSN)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := internaldb.RunMigrations(db.DB, database.Migrations, "migrations"); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
}
