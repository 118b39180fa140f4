package usecases

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bitcoin-wallet.backend/internal/domain/entities"
	domainerrors "bitcoin-wallet.backend/internal/domain/errors"
	"bitcoin-wallet.backend/internal/domain/repositories"
	"bitcoin-wallet.backend/pkg/logger"
	"bitcoin-wallet.backend/pkg/metrics"
)

// TransactionUsecase handles transfer business logic
type TransactionUsecase struct {
	userRepo        repositories.UserRepository
	walletRepo      repositories.WalletRepository
	transactionRepo repositories.TransactionRepository
	uow             repositories.UnitOfWork
}

// NewTransactionUsecase creates a new transaction usecase
func NewTransactionUsecase(
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	transactionRepo repositories.TransactionRepository,
	uow repositories.UnitOfWork,
) *TransactionUsecase {
	return &TransactionUsecase{
		userRepo:        userRepo,
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		uow:             uow,
	}
}

// MakeTransaction moves amount satoshis from the sender wallet to the
// receiver wallet. The full gross amount leaves the sender; cross-user
// transfers retain a fee that is credited nowhere. Debit, credit and the
// ledger row persist atomically.
func (u *TransactionUsecase) MakeTransaction(ctx context.Context, input *entities.CreateTransactionInput, apiKey string) (*entities.TransactionResponse, error) {
	user, err := resolveCaller(ctx, u.userRepo, apiKey)
	if err != nil {
		return nil, err
	}

	sender, err := u.walletRepo.GetByAddress(ctx, input.SenderWalletAddress)
	if err != nil {
		if err == domainerrors.ErrWalletNotFound {
			return nil, domainerrors.WalletNotFound(
				fmt.Sprintf("Wallet with address %s not found.", input.SenderWalletAddress))
		}
		return nil, err
	}

	receiver, err := u.walletRepo.GetByAddress(ctx, input.ReceiverWalletAddress)
	if err != nil {
		if err == domainerrors.ErrWalletNotFound {
			return nil, domainerrors.WalletNotFound(
				fmt.Sprintf("Wallet with address %s not found.", input.ReceiverWalletAddress))
		}
		return nil, err
	}

	if sender.UserID != user.ID {
		return nil, domainerrors.UnauthorizedWalletAccess(
			fmt.Sprintf("Wallet with address %s does not belong to the user with the name of %s",
				sender.Address, user.Name))
	}

	if sender.Balance < input.TransferAmount {
		return nil, domainerrors.NotEnoughBalance(
			fmt.Sprintf("Wallet with address %s does not have enough balance to make this transaction. "+
				"Current balance: %d, Transfer Amount: %d",
				sender.Address, sender.Balance, input.TransferAmount))
	}

	// Same-owner transfers are fee free; that includes self-transfers.
	var fee int64
	if sender.UserID != receiver.UserID {
		fee = TransferFee(input.TransferAmount)
	}
	transferred := input.TransferAmount - fee

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		// The balance guard inside Debit re-validates under the storage
		// transaction, so a concurrent transfer that drained the wallet
		// between the check above and here aborts the whole unit.
		if err := u.walletRepo.Debit(txCtx, sender.Address, input.TransferAmount); err != nil {
			if err == domainerrors.ErrNotEnoughBalance {
				return domainerrors.NotEnoughBalance(
					fmt.Sprintf("Wallet with address %s does not have enough balance to make this transaction. "+
						"Current balance: %d, Transfer Amount: %d",
						sender.Address, sender.Balance, input.TransferAmount))
			}
			return err
		}

		if err := u.walletRepo.Credit(txCtx, receiver.Address, transferred); err != nil {
			return err
		}

		return u.transactionRepo.Create(txCtx, &entities.Transaction{
			SenderWalletID:   sender.ID,
			ReceiverWalletID: receiver.ID,
			Amount:           input.TransferAmount,
			Fee:              fee,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "transfer completed",
		zap.String("sender", sender.Address),
		zap.String("receiver", receiver.Address),
		zap.Int64("amount", input.TransferAmount),
		zap.Int64("fee", fee),
	)
	metrics.ObserveTransfer(fee)

	return &entities.TransactionResponse{
		SenderWalletAddress:   sender.Address,
		ReceiverWalletAddress: receiver.Address,
		TransferAmount:        input.TransferAmount,
		TransferredAmount:     transferred,
		TransferFee:           fee,
	}, nil
}

// GetTransactions lists every transaction in which any of the caller's
// wallets appears as sender or receiver.
func (u *TransactionUsecase) GetTransactions(ctx context.Context, apiKey string) ([]*entities.TransactionResponse, error) {
	user, err := resolveCaller(ctx, u.userRepo, apiKey)
	if err != nil {
		return nil, err
	}

	wallets, err := u.walletRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	walletIDs := make([]uint, 0, len(wallets))
	for _, w := range wallets {
		walletIDs = append(walletIDs, w.ID)
	}

	transactions, err := u.transactionRepo.GetByWalletIDs(ctx, walletIDs)
	if err != nil {
		return nil, err
	}

	return u.buildTransactionResponses(ctx, transactions)
}

// GetWalletRelatedTransactions lists every transaction referencing one wallet
// owned by the caller.
func (u *TransactionUsecase) GetWalletRelatedTransactions(ctx context.Context, address, apiKey string) ([]*entities.TransactionResponse, error) {
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

	transactions, err := u.transactionRepo.GetByWalletID(ctx, wallet.ID)
	if err != nil {
		return nil, err
	}

	return u.buildTransactionResponses(ctx, transactions)
}

// GetStatistics aggregates the whole ledger
func (u *TransactionUsecase) GetStatistics(ctx context.Context) (*entities.StatisticsResponse, error) {
	total, profit, err := u.transactionRepo.CountAndProfit(ctx)
	if err != nil {
		return nil, err
	}
	return &entities.StatisticsResponse{
		TotalTransactions: total,
		PlatformProfit:    profit,
	}, nil
}

// buildTransactionResponses resolves every distinct wallet id in the result
// set to its address with one batch lookup, then maps the rows. Rows store
// wallet ids, not addresses; the batch keeps the query count bounded.
func (u *TransactionUsecase) buildTransactionResponses(ctx context.Context, transactions []*entities.Transaction) ([]*entities.TransactionResponse, error) {
	responses := make([]*entities.TransactionResponse, 0, len(transactions))
	if len(transactions) == 0 {
		return responses, nil
	}

	idSet := make(map[uint]struct{}, len(transactions)*2)
	for _, tr := range transactions {
		idSet[tr.SenderWalletID] = struct{}{}
		idSet[tr.ReceiverWalletID] = struct{}{}
	}
	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	wallets, err := u.walletRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	addressByID := make(map[uint]string, len(wallets))
	for _, w := range wallets {
		addressByID[w.ID] = w.Address
	}

	for _, tr := range transactions {
		responses = append(responses, &entities.TransactionResponse{
			SenderWalletAddress:   addressByID[tr.SenderWalletID],
			ReceiverWalletAddress: addressByID[tr.ReceiverWalletID],
			TransferAmount:        tr.Amount,
			TransferredAmount:     tr.Amount - tr.Fee,
			TransferFee:           tr.Fee,
		})
	}
	return responses, nil
}
