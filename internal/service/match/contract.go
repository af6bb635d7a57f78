//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=match_test
package match

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	ListOpenLoads(ctx context.Context) ([]entities.Load, error)
	GetDriver(ctx context.Context, driverID int64) (*entities.Driver, error)
}
