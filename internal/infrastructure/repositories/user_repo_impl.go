package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bitcoin-wallet.backend/internal/domain/entities"
	domainerrors "bitcoin-wallet.backend/internal/domain/errors"
	"bitcoin-wallet.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user and assigns its id
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		Name:   user.Name,
		APIKey: user.APIKey,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByAPIKey gets a user by its api key
func (r *UserRepository) GetByAPIKey(ctx context.Context, apiKey string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("api_key = ?", apiKey).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List lists all users in insertion order
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var userModels []models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.toEntity(&userModels[i]))
	}
	return users, nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:        m.ID,
		Name:      m.Name,
		APIKey:    m.APIKey,
		CreatedAt: m.CreatedAt,
	}
}
