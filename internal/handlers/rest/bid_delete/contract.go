//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_delete_test
package bid_delete

import (
	"context"

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
	WithdrawBid(ctx context.Context, actorID, bidID int64) error
}
