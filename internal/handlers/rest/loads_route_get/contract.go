//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=loads_route_get_test
package loads_route_get

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
	RouteLoads(ctx context.Context, driverID int64, from, to entities.RoutePoint, maxDeviationKm float64) ([]entities.MatchedLoad, error)
}
