package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	draftapp "github.com/openmarket/listing-service/application/draft"
	"github.com/openmarket/listing-service/cmd/config"
	redisclient "github.com/openmarket/listing-service/cmd/redis"
	_ "github.com/openmarket/listing-service/docs"
	draftstoreRepo "github.com/openmarket/listing-service/repository/draftstore"
	listingRepo "github.com/openmarket/listing-service/repository/listing"
	"github.com/openmarket/listing-service/thirdparty/rabbitmq"
	"github.com/openmarket/listing-service/thirdparty/storage"
	"github.com/openmarket/listing-service/transport"
	"github.com/openmarket/listing-service/utils/logger"
	"go.uber.org/zap"
)

// @title LISTING SERVICE API
// @version 1.0
// @description Listing draft composition and submission API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Image storage
	uploader, err := storage.NewMinioUploader(cfg)
	if err != nil {
		logger.Fatal("err connect minio", zap.Error(err))
	}
	if err := storage.EnsureBucket(context.Background(), uploader); err != nil {
		logger.Fatal("err ensure bucket", zap.Error(err))
	}

	// Listing submitted events
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Error("err connect rabbitmq publisher", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		"http://localhost:"+cfg.Server.Port, cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Error("err connect rabbitmq consumer", zap.Error(err))
	} else {
		defer consumer.Close()
		if err := consumer.Start(context.Background()); err != nil {
			logger.Error("err start rabbitmq consumer", zap.Error(err))
		}
	}

	// Initialize repositories
	ListingRepo := listingRepo.NewListingRepository(db)
	DraftKV := draftstoreRepo.NewRedisKV()

	// Initialize application layers
	DraftApp := draftapp.NewDraftApp(cfg, DraftKV, ListingRepo, publisher)

	httpTransport := transport.NewTransport(DraftApp, uploader, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
