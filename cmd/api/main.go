package main

import (
	"context"
	"log"

	"github.com/femfund/femfund/internal/ai"
	"github.com/femfund/femfund/internal/api/middleware"
	"github.com/femfund/femfund/internal/api/routes"
	"github.com/femfund/femfund/internal/application"
	"github.com/femfund/femfund/internal/config"
	"github.com/femfund/femfund/internal/config/db"
	appdomain "github.com/femfund/femfund/internal/domain/application"
	"github.com/femfund/femfund/internal/domain/funding"
	"github.com/femfund/femfund/internal/domain/learning"
	"github.com/femfund/femfund/internal/domain/user"
	"github.com/femfund/femfund/internal/mailer"
	"github.com/femfund/femfund/internal/repository"
	"github.com/femfund/femfund/internal/storage"
	"github.com/femfund/femfund/pkg/logger"
	"github.com/gin-gonic/gin"
)

// @title FemFund API
// @version 1.0
// @description Funding platform for women entrepreneurs: catalog, applications, credit evaluation, learning resources.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	zlog, err := logger.New("info", "json")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&funding.Option{},
		&appdomain.Application{},
		&appdomain.Document{},
		&learning.Resource{},
		&learning.Progress{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()

	store, err := storage.NewDocumentStore(ctx, storage.Config{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		UseSSL:    config.MinioUseSSL,
		Bucket:    config.MinioBucket,
	})
	if err != nil {
		log.Fatalf("Failed to initialize document storage: %v", err)
	}

	var mail mailer.Mailer = mailer.Noop{}
	if config.EmailEnabled {
		sesMailer, err := mailer.NewSESMailer(ctx, config.AWSRegion, config.EmailFrom)
		if err != nil {
			log.Fatalf("Failed to initialize mailer: %v", err)
		}
		mail = sesMailer
	}

	aiClient := ai.NewClient(ai.Config{
		BaseURL: config.AIBaseURL,
		APIKey:  config.AIAPIKey,
		Model:   config.AIModel,
		Timeout: config.AITimeout,
	})

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, aiClient, store, mail, zlog)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger(zlog))

	routes.RegisterRoutes(router, services)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
