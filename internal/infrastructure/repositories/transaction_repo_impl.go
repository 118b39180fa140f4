package repositories

import (
	"context"

	"gorm.io/gorm"

	"bitcoin-wallet.backend/internal/domain/entities"
	"bitcoin-wallet.backend/internal/infrastructure/models"
)

// TransactionRepository implements ledger data operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create appends a new ledger row and assigns its id
func (r *TransactionRepository) Create(ctx context.Context, transaction *entities.Transaction) error {
	m := &models.Transaction{
		SenderWalletID:   transaction.SenderWalletID,
		ReceiverWalletID: transaction.ReceiverWalletID,
		Amount:           transaction.Amount,
		Fee:              transaction.Fee,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	transaction.ID = m.ID
	transaction.CreatedAt = m.CreatedAt
	return nil
}

// GetByWalletID gets all ledger rows referencing the wallet as sender or receiver
func (r *TransactionRepository) GetByWalletID(ctx context.Context, walletID uint) ([]*entities.Transaction, error) {
	var txModels []models.Transaction
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("sender_wallet_id = ? OR receiver_wallet_id = ?", walletID, walletID).
		Order("id ASC").
		Find(&txModels).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(txModels), nil
}

// GetByWalletIDs gets all ledger rows where any of the given wallets appears
// as sender or receiver
func (r *TransactionRepository) GetByWalletIDs(ctx context.Context, walletIDs []uint) ([]*entities.Transaction, error) {
	if len(walletIDs) == 0 {
		return []*entities.Transaction{}, nil
	}

	var txModels []models.Transaction
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("sender_wallet_id IN ? OR receiver_wallet_id IN ?", walletIDs, walletIDs).
		Order("id ASC").
		Find(&txModels).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(txModels), nil
}

// CountAndProfit returns the ledger row count and the sum of retained fees
func (r *TransactionRepository) CountAndProfit(ctx context.Context) (int64, int64, error) {
	var row struct {
		TotalTransactions int64
		PlatformProfit    int64
	}
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Select("COUNT(*) AS total_transactions, COALESCE(SUM(transfer_fee), 0) AS platform_profit").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.TotalTransactions, row.PlatformProfit, nil
}

func (r *TransactionRepository) toEntities(txModels []models.Transaction) []*entities.Transaction {
	transactions := make([]*entities.Transaction, 0, len(txModels))
	for i := range txModels {
		m := &txModels[i]
		transactions = append(transactions, &entities.Transaction{
			ID:               m.ID,
			SenderWalletID:   m.SenderWalletID,
			ReceiverWalletID: m.ReceiverWalletID,
			Amount:           m.Amount,
			Fee:              m.Fee,
			CreatedAt:        m.CreatedAt,
		})
	}
	return transactions
}
