package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bitcoin-wallet.backend/internal/domain/entities"
	domainerrors "bitcoin-wallet.backend/internal/domain/errors"
	"bitcoin-wallet.backend/internal/interfaces/http/response"
)

type userService interface {
	CreateUser(ctx context.Context, name string) (*entities.User, error)
	GetUser(ctx context.Context, id uint) (*entities.User, error)
	ListUsers(ctx context.Context) ([]*entities.User, error)
}

// UserHandler handles user endpoints
type UserHandler struct {
	userUsecase userService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase userService) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// CreateUser registers a user
// POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "name must not be empty")
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		response.ValidationError(c, "name must not be empty")
		return
	}

	user, err := h.userUsecase.CreateUser(c.Request.Context(), input.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// GetUser gets a user by id
// GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.UserNotFound("User with id "+c.Param("id")+" not found"))
		return
	}

	user, err := h.userUsecase.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// ListUsers lists all users
// GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if users == nil {
		users = []*entities.User{}
	}
	response.Success(c, http.StatusOK, users)
}
