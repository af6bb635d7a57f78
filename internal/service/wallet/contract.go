//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_test
package wallet

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	// GetOrCreateForUpdate возвращает кошелек владельца под блокировкой,
	// создавая его при первом обращении.
	GetOrCreateForUpdate(ctx context.Context, ownerID int64) (*entities.Wallet, error)
	GetByOwner(ctx context.Context, ownerID int64) (*entities.Wallet, error)
	Credit(ctx context.Context, walletID int64, amount entities.Money) error
	Debit(ctx context.Context, walletID int64, amount entities.Money) error
	AddTransaction(ctx context.Context, transaction entities.WalletTransaction) error
	ListTransactions(ctx context.Context, walletID int64, limit int) ([]entities.WalletTransaction, error)

	GetCommissionRules(ctx context.Context) ([]entities.CommissionRule, error)
	GetReferrer(ctx context.Context, userID int64) (*int64, error)
}

type ProfileGateway interface {
	GetActor(ctx context.Context, actorID int64) (*entities.Actor, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
