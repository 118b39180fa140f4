package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bitcoin-wallet.backend/internal/domain/entities"
	domainerrors "bitcoin-wallet.backend/internal/domain/errors"
	"bitcoin-wallet.backend/internal/domain/repositories"
)

// WalletUsecase handles wallet business logic
type WalletUsecase struct {
	userRepo   repositories.UserRepository
	walletRepo repositories.WalletRepository
	converter  *BtcPriceConverter
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	converter *BtcPriceConverter,
) *WalletUsecase {
	return &WalletUsecase{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		converter:  converter,
	}
}

// CreateWallet creates a wallet for the caller with the starting grant,
// subject to the per-user cap.
func (u *WalletUsecase) CreateWallet(ctx context.Context, apiKey string) (*entities.WalletResponse, error) {
	user, err := resolveCaller(ctx, u.userRepo, apiKey)
	if err != nil {
		return nil, err
	}

	count, err := u.walletRepo.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if count >= MaxWalletsPerUser {
		return nil, domainerrors.WalletLimitExceeded(
			fmt.Sprintf("User %s already has %d wallets", user.Name, MaxWalletsPerUser))
	}

	wallet := &entities.Wallet{
		UserID:  user.ID,
		Balance: InitialBalanceSatoshis,
		Address: uuid.NewString(),
	}
	if err := u.walletRepo.Create(ctx, wallet); err != nil {
		return nil, err
	}

	return u.buildWalletResponse(ctx, wallet)
}

// GetWallet returns the caller's wallet view for the given address
func (u *WalletUsecase) GetWallet(ctx context.Context, address, apiKey string) (*entities.WalletResponse, error) {
	user, err := resolveCaller(ctx, u.userRepo, apiKey)
	if err != nil {
		return nil, err
	}

	wallet, err := u.walletRepo.GetByAddress(ctx, address)
	if err != nil {
		if err == domainerrors.ErrWalletNotFound {
			return nil, domainerrors.WalletNotFound(
				fmt.Sprintf("Wallet with address %s not found.", address))
		}
		return nil, err
	}

	if wallet.UserID != user.ID {
		return nil, domainerrors.UnauthorizedWalletAccess(
			fmt.Sprintf("Wallet with address %s does not belong to the user with the name of %s",
				wallet.Address, user.Name))
	}

	return u.buildWalletResponse(ctx, wallet)
}

func (u *WalletUsecase) buildWalletResponse(ctx context.Context, wallet *entities.Wallet) (*entities.WalletResponse, error) {
	usd, err := u.converter.SatoshiToUSD(ctx, wallet.Balance)
	if err != nil {
		return nil, err
	}
	return &entities.WalletResponse{
		Address:    wallet.Address,
		BalanceBTC: u.converter.SatoshiToBTC(wallet.Balance),
		BalanceUSD: usd,
	}, nil
}

// resolveCaller maps an api key to its user; an unknown key is a domain
// UserNotFound, not an authentication failure.
func resolveCaller(ctx context.Context, userRepo repositories.UserRepository, apiKey string) (*entities.User, error) {
	user, err := userRepo.GetByAPIKey(ctx, apiKey)
	if err != nil {
		if err == domainerrors.ErrUserNotFound {
			return nil, domainerrors.UserNotFound(
				fmt.Sprintf("User with api_key %s not found", apiKey))
		}
		return nil, err
	}
	return user, nil
}
