//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=loads_post_test
package loads_post

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
	CreateLoad(ctx context.Context, actorID int64, loadModify entities.LoadModify) (*entities.Load, error)
}
