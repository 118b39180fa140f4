package entities

import "time"

// Transaction is an append-only ledger record of one transfer. Amount is the
// gross satoshis debited from the sender; Amount minus Fee is what the
// receiver was credited.
type Transaction struct {
	ID               uint      `json:"id"`
	SenderWalletID   uint      `json:"sender_wallet_id"`
	ReceiverWalletID uint      `json:"receiver_wallet_id"`
	Amount           int64     `json:"transfer_amount"`
	Fee              int64     `json:"transfer_fee"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateTransactionInput represents input for making a transfer
type CreateTransactionInput struct {
	SenderWalletAddress   string `json:"sender_wallet_address" binding:"required"`
	ReceiverWalletAddress string `json:"receiver_wallet_address" binding:"required"`
	TransferAmount        int64  `json:"transfer_amount" binding:"required,gt=0"`
}

// TransactionResponse is the external view of a ledger record, with wallet
// ids resolved to their addresses.
type TransactionResponse struct {
	SenderWalletAddress   string `json:"sender_wallet_address"`
	ReceiverWalletAddress string `json:"receiver_wallet_address"`
	TransferAmount        int64  `json:"transfer_amount"`
	TransferredAmount     int64  `json:"transferred_amount"`
	TransferFee           int64  `json:"transfer_fee"`
}

// StatisticsResponse aggregates the whole ledger: row count and the sum of
// all retained fees.
type StatisticsResponse struct {
	TotalTransactions int64 `json:"total_transactions"`
	PlatformProfit    int64 `json:"platform_profit"`
}
