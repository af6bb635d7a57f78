//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_get_test
package wallet_get

import (
	"context"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetWallet(ctx context.Context, actorID int64) (*entities.Wallet, []entities.WalletTransaction, error)
}
