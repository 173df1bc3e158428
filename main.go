package main

import (
	"log"

	"planetarium-booking/cmd"
	"planetarium-booking/internal/data/repository"
	"planetarium-booking/internal/wire"
	"planetarium-booking/pkg/cache"
	"planetarium-booking/pkg/database"
	"planetarium-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Caching degrades gracefully when Redis is down
	rdb := cache.NewRedisClient(config.Redis)
	if rdb == nil {
		logger.Warn("Redis unavailable, ticket view cache disabled",
			zap.String("addr", config.Redis.Addr))
	} else {
		logger.Info("Redis connected successfully")
	}

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, config, rdb, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
