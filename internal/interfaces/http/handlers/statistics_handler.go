package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bitcoin-wallet.backend/internal/domain/entities"
	"bitcoin-wallet.backend/internal/interfaces/http/response"
)

type statisticsService interface {
	GetStatistics(ctx context.Context) (*entities.StatisticsResponse, error)
}

// StatisticsHandler handles the platform statistics endpoint
type StatisticsHandler struct {
	transactionUsecase statisticsService
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(transactionUsecase statisticsService) *StatisticsHandler {
	return &StatisticsHandler{transactionUsecase: transactionUsecase}
}

// GetStatistics returns the ledger row count and cumulative platform profit.
// Admin authorization happens in middleware.
// GET /statistics
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	stats, err := h.transactionUsecase.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
