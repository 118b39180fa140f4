package repositories

import (
	"context"

	"bitcoin-wallet.backend/internal/domain/entities"
)

// WalletRepository defines wallet data operations
type WalletRepository interface {
	Create(ctx context.Context, wallet *entities.Wallet) error
	GetByAddress(ctx context.Context, address string) (*entities.Wallet, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*entities.Wallet, error)
	GetByUserID(ctx context.Context, userID uint) ([]*entities.Wallet, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
	// Debit subtracts amount from the wallet's balance in one guarded
	// statement; it fails with ErrNotEnoughBalance when the balance is
	// lower than amount, leaving the row untouched.
	Debit(ctx context.Context, address string, amount int64) error
	Credit(ctx context.Context, address string, amount int64) error
}
