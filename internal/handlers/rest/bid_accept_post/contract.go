//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_accept_post_test
package bid_accept_post

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
	AcceptBid(ctx context.Context, actorID, bidID int64) (*entities.Order, error)
}
