package repositories

import (
	"context"

	"bitcoin-wallet.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
}
