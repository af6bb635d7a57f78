//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bids_post_test
package bids_post

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
	PlaceBid(ctx context.Context, actorID, loadID int64, amount entities.Money, comment string) (*entities.Bid, error)
}
