// main.go
package main

import (
	"log"
	"time"

	"doctor-appointment/cmd"
	"doctor-appointment/internal/data/repository"
	"doctor-appointment/internal/wire"
	"doctor-appointment/pkg/database"
	"doctor-appointment/pkg/token"
	"doctor-appointment/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Token revocation lives in Redis when configured, otherwise in-process.
	var revocation token.RevocationStore
	if config.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
		revocation = token.NewRedisRevocationStore(rdb)
		logger.Info("Using Redis token revocation store", zap.String("addr", config.Redis.Addr))
	} else {
		revocation = token.NewMemoryRevocationStore()
		logger.Info("Using in-memory token revocation store")
	}

	tokens := token.NewManager(
		config.JWT.Secret,
		time.Duration(config.JWT.ExpiryHours)*time.Hour,
		revocation,
	)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, tokens, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
