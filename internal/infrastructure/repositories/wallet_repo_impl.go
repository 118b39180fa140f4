package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bitcoin-wallet.backend/internal/domain/entities"
	domainerrors "bitcoin-wallet.backend/internal/domain/errors"
	"bitcoin-wallet.backend/internal/infrastructure/models"
)

// WalletRepository implements wallet data operations
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Create creates a new wallet and assigns its id
func (r *WalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	m := &models.Wallet{
		UserID:  wallet.UserID,
		Balance: wallet.Balance,
		Address: wallet.Address,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	wallet.ID = m.ID
	wallet.CreatedAt = m.CreatedAt
	return nil
}

// GetByAddress gets a wallet by its address
func (r *WalletRepository) GetByAddress(ctx context.Context, address string) (*entities.Wallet, error) {
	var m models.Wallet
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("wallet_address = ?", address).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrWalletNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByIDs gets all wallets whose id appears in ids
func (r *WalletRepository) GetByIDs(ctx context.Context, ids []uint) ([]*entities.Wallet, error) {
	if len(ids) == 0 {
		return []*entities.Wallet{}, nil
	}

	var walletModels []models.Wallet
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id IN ?", ids).Find(&walletModels).Error; err != nil {
		return nil, err
	}

	wallets := make([]*entities.Wallet, 0, len(walletModels))
	for i := range walletModels {
		wallets = append(wallets, r.toEntity(&walletModels[i]))
	}
	return wallets, nil
}

// GetByUserID gets all wallets owned by a user
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uint) ([]*entities.Wallet, error) {
	var walletModels []models.Wallet
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&walletModels).Error; err != nil {
		return nil, err
	}

	wallets := make([]*entities.Wallet, 0, len(walletModels))
	for i := range walletModels {
		wallets = append(wallets, r.toEntity(&walletModels[i]))
	}
	return wallets, nil
}

// CountByUserID counts the wallets owned by a user
func (r *WalletRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Wallet{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Debit subtracts amount from a wallet's balance. The balance guard in the
// WHERE clause makes the debit atomic under concurrent transfers: the row is
// only updated while the balance still covers the amount, so two transfers
// racing on the same wallet cannot drive it negative.
func (r *WalletRepository) Debit(ctx context.Context, address string, amount int64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Wallet{}).
		Where("wallet_address = ? AND balance >= ?", address, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotEnoughBalance
	}
	return nil
}

// Credit adds amount to a wallet's balance
func (r *WalletRepository) Credit(ctx context.Context, address string, amount int64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Wallet{}).
		Where("wallet_address = ?", address).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrWalletNotFound
	}
	return nil
}

func (r *WalletRepository) toEntity(m *models.Wallet) *entities.Wallet {
	return &entities.Wallet{
		ID:        m.ID,
		UserID:    m.UserID,
		Balance:   m.Balance,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
	}
}
