package entities

import "time"

// Wallet holds an integer satoshi balance. A wallet belongs to exactly one
// user for its lifetime; the balance is mutated only through transfers.
type Wallet struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Balance   int64     `json:"balance"`
	Address   string    `json:"wallet_address"`
	CreatedAt time.Time `json:"created_at"`
}

// WalletResponse is the external view of a wallet, with the satoshi balance
// rendered in BTC and USD.
type WalletResponse struct {
	Address    string  `json:"wallet_address"`
	BalanceBTC float64 `json:"balance_btc"`
	BalanceUSD float64 `json:"balance_usd"`
}
