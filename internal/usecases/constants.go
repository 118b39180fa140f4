package usecases

const (
	// InitialBalanceSatoshis is the starting grant of every new wallet (1 BTC).
	InitialBalanceSatoshis int64 = 100_000_000

	// MaxWalletsPerUser caps wallet creation; existing wallets are never
	// revoked retroactively.
	MaxWalletsPerUser = 3

	// SatoshisPerBTC converts the internal unit to the display unit.
	SatoshisPerBTC int64 = 100_000_000

	// Cross-user transfers pay a 1.5% fee, floored to whole satoshis.
	// Integer arithmetic keeps the fee exact for every int64 amount.
	feeNumerator   int64 = 15
	feeDenominator int64 = 1000
)

// TransferFee returns the fee retained for a transfer of amount satoshis
// between wallets of different users.
func TransferFee(amount int64) int64 {
	return amount * feeNumerator / feeDenominator
}
