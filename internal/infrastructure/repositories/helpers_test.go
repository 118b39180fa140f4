package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bitcoin-wallet.backend/internal/domain/entities"
	"bitcoin-wallet.backend/internal/infrastructure/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, models.Migrate(db), "migrate schema")
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, apiKey string) *entities.User {
	t.Helper()
	user := &entities.User{Name: name, APIKey: apiKey}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func seedWallet(t *testing.T, db *gorm.DB, userID uint, balance int64, address string) *entities.Wallet {
	t.Helper()
	wallet := &entities.Wallet{UserID: userID, Balance: balance, Address: address}
	require.NoError(t, NewWalletRepository(db).Create(context.Background(), wallet))
	return wallet
}
