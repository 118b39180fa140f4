package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"bitcoin-wallet.backend/internal/domain/entities"
	domainerrors "bitcoin-wallet.backend/internal/domain/errors"
	"bitcoin-wallet.backend/internal/interfaces/http/middleware"
)

type walletServiceStub struct {
	byAPIKey map[string]uint // api key -> owner id
	wallets  map[string]*entities.Wallet
	created  int
}

func newWalletServiceStub() *walletServiceStub {
	return &walletServiceStub{
		byAPIKey: map[string]uint{},
		wallets:  map[string]*entities.Wallet{},
	}
}

func (s *walletServiceStub) resolve(apiKey string) (uint, error) {
	id, ok := s.byAPIKey[apiKey]
	if !ok {
		return 0, domainerrors.UserNotFound(fmt.Sprintf("User with api_key %s not found", apiKey))
	}
	return id, nil
}

func (s *walletServiceStub) CreateWallet(_ context.Context, apiKey string) (*entities.WalletResponse, error) {
	userID, err := s.resolve(apiKey)
	if err != nil {
		return nil, err
	}
	count := 0
	for _, w := range s.wallets {
		if w.UserID == userID {
			count++
		}
	}
	if count >= 3 {
		return nil, domainerrors.WalletLimitExceeded("User already has 3 wallets")
	}
	s.created++
	address := fmt.Sprintf("w%d", s.created)
	s.wallets[address] = &entities.Wallet{UserID: userID, Balance: 100_000_000, Address: address}
	return &entities.WalletResponse{Address: address, BalanceBTC: 1, BalanceUSD: 50_000}, nil
}

func (s *walletServiceStub) GetWallet(_ context.Context, address, apiKey string) (*entities.WalletResponse, error) {
	userID, err := s.resolve(apiKey)
	if err != nil {
		return nil, err
	}
	w, ok := s.wallets[address]
	if !ok {
		return nil, domainerrors.WalletNotFound(fmt.Sprintf("Wallet with address %s not found.", address))
	}
	if w.UserID != userID {
		return nil, domainerrors.UnauthorizedWalletAccess("Wallet does not belong to the caller")
	}
	return &entities.WalletResponse{Address: address, BalanceBTC: 1, BalanceUSD: 50_000}, nil
}

func newWalletRouter(stub *walletServiceStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWalletHandler(stub)
	r := gin.New()
	wallets := r.Group("/wallets")
	wallets.Use(middleware.APIKeyMiddleware())
	wallets.POST("", h.CreateWallet)
	wallets.GET("/:address", h.GetWallet)
	return r
}

func TestWalletHandler_CreateWallet(t *testing.T) {
	stub := newWalletServiceStub()
	stub.byAPIKey["key-a"] = 1
	r := newWalletRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/wallets", nil)
	req.Header.Set("x-api-key", "key-a")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var view entities.WalletResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("unmarshal wallet view: %v", err)
	}
	if view.Address == "" || view.BalanceBTC != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestWalletHandler_CreateWalletUnknownCaller(t *testing.T) {
	r := newWalletRouter(newWalletServiceStub())

	req := httptest.NewRequest(http.MethodPost, "/wallets", nil)
	req.Header.Set("x-api-key", "nope")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestWalletHandler_CreateWalletMissingHeader(t *testing.T) {
	r := newWalletRouter(newWalletServiceStub())

	req := httptest.NewRequest(http.MethodPost, "/wallets", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	// an absent key is just an unresolvable caller
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestWalletHandler_CreateWalletLimit(t *testing.T) {
	stub := newWalletServiceStub()
	stub.byAPIKey["key-a"] = 1
	r := newWalletRouter(stub)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/wallets", nil)
		req.Header.Set("x-api-key", "key-a")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("wallet %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/wallets", nil)
	req.Header.Set("x-api-key", "key-a")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("fourth wallet: expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestWalletHandler_GetWalletStatusMapping(t *testing.T) {
	stub := newWalletServiceStub()
	stub.byAPIKey["key-a"] = 1
	stub.byAPIKey["key-b"] = 2
	stub.wallets["w1"] = &entities.Wallet{UserID: 1, Address: "w1"}
	r := newWalletRouter(stub)

	cases := []struct {
		name    string
		address string
		apiKey  string
		status  int
	}{
		{"owner reads own wallet", "w1", "key-a", http.StatusOK},
		{"unknown wallet", "missing", "key-a", http.StatusNotFound},
		{"unknown caller", "w1", "nope", http.StatusNotFound},
		{"foreign wallet", "w1", "key-b", http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/wallets/"+tc.address, nil)
		req.Header.Set("x-api-key", tc.apiKey)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d body=%s", tc.name, tc.status, rec.Code, rec.Body.String())
		}
	}
}
