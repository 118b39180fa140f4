package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bitcoin-wallet.backend/internal/domain/entities"
	domainerrors "bitcoin-wallet.backend/internal/domain/errors"
	"bitcoin-wallet.backend/internal/domain/repositories"
)

// UserUsecase handles user business logic
type UserUsecase struct {
	userRepo repositories.UserRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// CreateUser registers a user with a freshly generated api key. Name
// validation happens at the request boundary.
func (u *UserUsecase) CreateUser(ctx context.Context, name string) (*entities.User, error) {
	user := &entities.User{
		Name:   name,
		APIKey: uuid.NewString(),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser gets a user by id
func (u *UserUsecase) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if err == domainerrors.ErrUserNotFound {
			return nil, domainerrors.UserNotFound(fmt.Sprintf("User with id %d not found", id))
		}
		return nil, err
	}
	return user, nil
}

// ListUsers lists all users in insertion order
func (u *UserUsecase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.List(ctx)
}
