package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bitcoin-wallet.backend/internal/domain/entities"
	"bitcoin-wallet.backend/internal/interfaces/http/middleware"
	"bitcoin-wallet.backend/internal/interfaces/http/response"
)

type walletService interface {
	CreateWallet(ctx context.Context, apiKey string) (*entities.WalletResponse, error)
	GetWallet(ctx context.Context, address, apiKey string) (*entities.WalletResponse, error)
}

// WalletHandler handles wallet endpoints
type WalletHandler struct {
	walletUsecase walletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUsecase walletService) *WalletHandler {
	return &WalletHandler{walletUsecase: walletUsecase}
}

// CreateWallet creates a wallet for the caller
// POST /wallets
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	wallet, err := h.walletUsecase.CreateWallet(c.Request.Context(), middleware.GetAPIKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, wallet)
}

// GetWallet gets one of the caller's wallets by address
// GET /wallets/:address
func (h *WalletHandler) GetWallet(c *gin.Context) {
	wallet, err := h.walletUsecase.GetWallet(c.Request.Context(), c.Param("address"), middleware.GetAPIKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, wallet)
}
