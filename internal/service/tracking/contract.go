//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	CreateRoute(ctx context.Context, route entities.RouteTracking) error
	GetRoute(ctx context.Context, orderID int64) (*entities.RouteTracking, error)
	GetRouteForUpdate(ctx context.Context, orderID int64) (*entities.RouteTracking, error)
	UpdateRoute(ctx context.Context, route entities.RouteTracking) error

	InsertPing(ctx context.Context, ping entities.LocationPing) (*entities.LocationPing, error)
	GetLastPing(ctx context.Context, orderID int64) (*entities.LocationPing, error)

	GetOrder(ctx context.Context, orderID int64) (*entities.Order, error)
}

// LocationCache быстрый доступ к последней позиции водителя.
type LocationCache interface {
	SetLatest(ctx context.Context, location entities.DriverLocation) error
	GetLatest(ctx context.Context, driverID int64) (*entities.DriverLocation, error)
}

type RoutingGateway interface {
	Route(ctx context.Context, origin, destination entities.RoutePoint) (*entities.RoutePlan, error)
}

type Broadcaster interface {
	Broadcast(orderID int64, snapshot entities.TrackingSnapshot)
}

type Notifier interface {
	LocationUpdate(ctx context.Context, snapshot entities.TrackingSnapshot) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
