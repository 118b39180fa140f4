package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitcoin-wallet.backend/internal/domain/entities"
	domainerrors "bitcoin-wallet.backend/internal/domain/errors"
)

func TestWalletRepository_GetByAddress(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	user := seedUser(t, db, "alice", "key-a")
	seedWallet(t, db, user.ID, 100_000_000, "w1")

	wallet, err := repo.GetByAddress(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, wallet.UserID)
	assert.Equal(t, int64(100_000_000), wallet.Balance)

	_, err = repo.GetByAddress(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrWalletNotFound)
}

func TestWalletRepository_GetByIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	user := seedUser(t, db, "alice", "key-a")
	w1 := seedWallet(t, db, user.ID, 10, "w1")
	w2 := seedWallet(t, db, user.ID, 20, "w2")
	seedWallet(t, db, user.ID, 30, "w3")

	wallets, err := repo.GetByIDs(context.Background(), []uint{w1.ID, w2.ID})
	require.NoError(t, err)
	assert.Len(t, wallets, 2)

	wallets, err = repo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, wallets)
}

func TestWalletRepository_CountByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	alice := seedUser(t, db, "alice", "key-a")
	bob := seedUser(t, db, "bob", "key-b")
	seedWallet(t, db, alice.ID, 0, "w1")
	seedWallet(t, db, alice.ID, 0, "w2")
	seedWallet(t, db, bob.ID, 0, "w3")

	count, err := repo.CountByUserID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByUserID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestWalletRepository_DebitGuardsBalance(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	user := seedUser(t, db, "alice", "key-a")
	seedWallet(t, db, user.ID, 1000, "w1")

	require.NoError(t, repo.Debit(context.Background(), "w1", 600))

	wallet, err := repo.GetByAddress(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, int64(400), wallet.Balance)

	// a second debit larger than the remainder leaves the row untouched
	err = repo.Debit(context.Background(), "w1", 500)
	assert.ErrorIs(t, err, domainerrors.ErrNotEnoughBalance)

	wallet, err = repo.GetByAddress(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, int64(400), wallet.Balance)
}

func TestWalletRepository_DebitExactBalance(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	user := seedUser(t, db, "alice", "key-a")
	seedWallet(t, db, user.ID, 1000, "w1")

	require.NoError(t, repo.Debit(context.Background(), "w1", 1000))

	wallet, err := repo.GetByAddress(context.Background(), "w1")
	require.NoError(t, err)
	assert.Zero(t, wallet.Balance)
}

func TestWalletRepository_Credit(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	user := seedUser(t, db, "alice", "key-a")
	seedWallet(t, db, user.ID, 100, "w1")

	require.NoError(t, repo.Credit(context.Background(), "w1", 985))

	wallet, err := repo.GetByAddress(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, int64(1085), wallet.Balance)

	err = repo.Credit(context.Background(), "missing", 1)
	assert.ErrorIs(t, err, domainerrors.ErrWalletNotFound)
}

func TestWalletRepository_AddressUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	user := seedUser(t, db, "alice", "key-a")
	seedWallet(t, db, user.ID, 0, "dup")

	err := repo.Create(context.Background(), &entities.Wallet{UserID: user.ID, Address: "dup"})
	assert.Error(t, err)
}
