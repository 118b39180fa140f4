package repositories

import (
	"context"

	"bitcoin-wallet.backend/internal/domain/entities"
)

// TransactionRepository defines ledger data operations
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entities.Transaction) error
	GetByWalletID(ctx context.Context, walletID uint) ([]*entities.Transaction, error)
	GetByWalletIDs(ctx context.Context, walletIDs []uint) ([]*entities.Transaction, error)
	// CountAndProfit returns the total number of ledger rows and the sum of
	// all retained fees, zero when the ledger is empty.
	CountAndProfit(ctx context.Context) (int64, int64, error)
}
