package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bitcoin-wallet.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	userHandler        *handlers.UserHandler
	walletHandler      *handlers.WalletHandler
	transactionHandler *handlers.TransactionHandler
	statisticsHandler  *handlers.StatisticsHandler
	apiKeyMiddleware   gin.HandlerFunc
	adminMiddleware    gin.HandlerFunc
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// User routes (public)
	users := r.Group("/users")
	{
		users.POST("", d.userHandler.CreateUser)
		users.GET("", d.userHandler.ListUsers)
		users.GET("/:id", d.userHandler.GetUser)
	}

	// Wallet routes (caller identified by x-api-key)
	wallets := r.Group("/wallets")
	wallets.Use(d.apiKeyMiddleware)
	{
		wallets.POST("", d.walletHandler.CreateWallet)
		wallets.GET("/:address", d.walletHandler.GetWallet)
		wallets.GET("/:address/transactions", d.transactionHandler.GetWalletTransactions)
	}

	// Transaction routes (caller identified by x-api-key)
	transactions := r.Group("/transactions")
	transactions.Use(d.apiKeyMiddleware)
	{
		transactions.GET("", d.transactionHandler.GetTransactions)
		transactions.POST("", d.transactionHandler.MakeTransaction)
	}

	// Statistics (static admin shared secret)
	statistics := r.Group("/statistics")
	statistics.Use(d.adminMiddleware)
	{
		statistics.GET("", d.statisticsHandler.GetStatistics)
	}
}
