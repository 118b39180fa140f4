package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction is the persistence model for ledger rows
type Transaction struct {
	ID               uint  `gorm:"primaryKey"`
	SenderWalletID   uint  `gorm:"not null;index"`
	ReceiverWalletID uint  `gorm:"not null;index"`
	Amount           int64 `gorm:"column:transfer_amount;not null"`
	Fee              int64 `gorm:"column:transfer_fee;not null"`
	CreatedAt        time.Time

	SenderWallet   *Wallet `gorm:"foreignKey:SenderWalletID"`
	ReceiverWallet *Wallet `gorm:"foreignKey:ReceiverWalletID"`
}

// TableName overrides the table name
func (Transaction) TableName() string {
	return "transactions"
}

// Migrate creates or updates the schema for all persistence models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Wallet{}, &Transaction{})
}
