//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_payment_post_test
package order_payment_post

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
	AuthorizePayment(ctx context.Context, actorID, orderID int64) (*entities.Payment, error)
}
