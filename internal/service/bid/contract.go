//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_test
package bid

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, bidModify entities.BidModify, loadID, driverID int64, comment string) (*entities.Bid, error)
	GetByID(ctx context.Context, id int64) (*entities.Bid, error)
	UpdateStatus(ctx context.Context, id int64, status entities.BidStatusType) (*entities.Bid, error)
	Delete(ctx context.Context, id int64) error
	RejectPendingByLoad(ctx context.Context, loadID, exceptBidID int64) (int64, error)

	GetLoadForUpdate(ctx context.Context, loadID int64) (*entities.Load, error)
	UpdateLoad(ctx context.Context, loadModify entities.LoadModify) error
	RecomputeLowestBid(ctx context.Context, loadID int64) error

	GetDriver(ctx context.Context, driverID int64) (*entities.Driver, error)
}

type OrderService interface {
	CreateFromBid(ctx context.Context, load entities.Load, acceptedBid entities.Bid) (*entities.Order, error)
	ScheduleExpiry(order entities.Order)
}

type ProfileGateway interface {
	GetActor(ctx context.Context, actorID int64) (*entities.Actor, error)
}

type Notifier interface {
	BidPlaced(ctx context.Context, bid entities.Bid) error
	BidAccepted(ctx context.Context, bid entities.Bid, order entities.Order) error
	BidRejected(ctx context.Context, bid entities.Bid) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
