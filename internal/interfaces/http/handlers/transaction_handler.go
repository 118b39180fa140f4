package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bitcoin-wallet.backend/internal/domain/entities"
	"bitcoin-wallet.backend/internal/interfaces/http/middleware"
	"bitcoin-wallet.backend/internal/interfaces/http/response"
)

type transactionService interface {
	MakeTransaction(ctx context.Context, input *entities.CreateTransactionInput, apiKey string) (*entities.TransactionResponse, error)
	GetTransactions(ctx context.Context, apiKey string) ([]*entities.TransactionResponse, error)
	GetWalletRelatedTransactions(ctx context.Context, address, apiKey string) ([]*entities.TransactionResponse, error)
}

// TransactionHandler handles transfer endpoints
type TransactionHandler struct {
	transactionUsecase transactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUsecase transactionService) *TransactionHandler {
	return &TransactionHandler{transactionUsecase: transactionUsecase}
}

// MakeTransaction moves satoshis between two wallets
// POST /transactions
func (h *TransactionHandler) MakeTransaction(c *gin.Context) {
	var input entities.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	transaction, err := h.transactionUsecase.MakeTransaction(c.Request.Context(), &input, middleware.GetAPIKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, transaction)
}

// GetTransactions lists all transactions touching the caller's wallets
// GET /transactions
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	transactions, err := h.transactionUsecase.GetTransactions(c.Request.Context(), middleware.GetAPIKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, transactions)
}

// GetWalletTransactions lists all transactions referencing one wallet
// GET /wallets/:address/transactions
func (h *TransactionHandler) GetWalletTransactions(c *gin.Context) {
	transactions, err := h.transactionUsecase.GetWalletRelatedTransactions(
		c.Request.Context(), c.Param("address"), middleware.GetAPIKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, transactions)
}
