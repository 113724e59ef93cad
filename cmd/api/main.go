package main

import (
	"context"
	"flag"
	"os"
	"time"

	"cinediscover/proj/internal/config"
	"cinediscover/proj/internal/lib/logger"
	"cinediscover/proj/internal/services"
	"cinediscover/proj/internal/storage/postgres"

	"github.com/joho/godotenv"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file")
	flag.Parse()

	// .env is optional, the config layer reads whatever is in the environment
	_ = godotenv.Load()
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	storage, err := postgres.New(ctx, cfg.DB.Dsn, cfg.DB.MaxConns, cfg.DB.MaxConnIdleTime)
	if err != nil {
		panic(err)
	}
	defer storage.Close()
	log.Info("database connection established")
	if err := postgres.Migrate(cfg.DB.Dsn); err != nil {
		panic(err)
	}
	log.Info("migrations applied")

	app := NewApplication(cfg, log, services.New(log, storage))
	if err := app.serve(); err != nil {
		log.Error("server stopped", "reason", err.Error())
		os.Exit(1)
	}
}
