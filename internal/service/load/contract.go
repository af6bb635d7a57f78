//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_test
package load

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, loadModify entities.LoadModify) (*entities.Load, error)
	Update(ctx context.Context, loadModify entities.LoadModify) (*entities.Load, error)
	Delete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (*entities.Load, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Load, error)
	CountBids(ctx context.Context, loadID int64) (int64, error)
}

type ProfileGateway interface {
	GetActor(ctx context.Context, actorID int64) (*entities.Actor, error)
}

type RoutingGateway interface {
	Route(ctx context.Context, origin, destination entities.RoutePoint) (*entities.RoutePlan, error)
}

type Notifier interface {
	LoadPosted(ctx context.Context, load entities.Load) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
