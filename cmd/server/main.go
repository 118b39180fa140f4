package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bitcoin-wallet.backend/internal/config"
	"bitcoin-wallet.backend/internal/infrastructure/models"
	"bitcoin-wallet.backend/internal/infrastructure/repositories"
	"bitcoin-wallet.backend/internal/interfaces/http/handlers"
	"bitcoin-wallet.backend/internal/interfaces/http/middleware"
	"bitcoin-wallet.backend/internal/usecases"
	"bitcoin-wallet.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := models.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	logger.Info(context.Background(), "Schema migrated")

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	rateSource := usecases.NewCoinGeckoRateSource(cfg.PriceFeed.BaseURL, cfg.PriceFeed.Timeout)
	converter := usecases.NewBtcPriceConverter(rateSource)
	userUsecase := usecases.NewUserUsecase(userRepo)
	walletUsecase := usecases.NewWalletUsecase(userRepo, walletRepo, converter)
	transactionUsecase := usecases.NewTransactionUsecase(userRepo, walletRepo, transactionRepo, uow)

	// Handlers
	userHandler := handlers.NewUserHandler(userUsecase)
	walletHandler := handlers.NewWalletHandler(walletUsecase)
	transactionHandler := handlers.NewTransactionHandler(transactionUsecase)
	statisticsHandler := handlers.NewStatisticsHandler(transactionUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	registerRoutes(r, routeDeps{
		userHandler:        userHandler,
		walletHandler:      walletHandler,
		transactionHandler: transactionHandler,
		statisticsHandler:  statisticsHandler,
		apiKeyMiddleware:   middleware.APIKeyMiddleware(),
		adminMiddleware:    middleware.AdminAuthMiddleware(cfg.Admin.APIKey),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(context.Background(), "Shutting down server")
		sqlDB.Close()
		os.Exit(0)
	}()

	log.Printf("Bitcoin wallet backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
