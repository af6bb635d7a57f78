//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"freight/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	NextNumber(ctx context.Context) (int64, error)

	// ExpireByID переводит заказ в expired, только если он все еще ждет
	// подтверждения. Возвращает nil, nil для опоздавшего таймера.
	ExpireByID(ctx context.Context, id int64) (*entities.ExpiredOrder, error)
	ExpireOverdue(ctx context.Context, now time.Time) ([]entities.ExpiredOrder, error)
	ListPendingExpiry(ctx context.Context) ([]entities.Order, error)

	CreatePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error)
	GetPaymentForUpdate(ctx context.Context, orderID int64) (*entities.Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID int64, status entities.PaymentStatusType) error

	ReopenLoad(ctx context.Context, loadID int64) (entities.LoadStatusType, error)
	SetLoadStatus(ctx context.Context, loadID int64, status entities.LoadStatusType) error
	MarkBidRejected(ctx context.Context, bidID int64) error

	// AssignDriverLoad добавляет вес загруза к текущей загрузке водителя
	// и помечает его занятым; ReleaseDriverLoad возвращает вес обратно и
	// освобождает водителя, когда загрузка обнулилась.
	AssignDriverLoad(ctx context.Context, driverID, loadID int64) error
	ReleaseDriverLoad(ctx context.Context, driverID, loadID int64) error
}

type WalletService interface {
	DistributeOrderPayout(ctx context.Context, order entities.Order) ([]entities.CommissionCredit, error)
}

type TrackingService interface {
	InitRoute(ctx context.Context, orderID int64, origin, destination entities.RoutePoint) error
}

type PaymentGateway interface {
	Authorize(ctx context.Context, amount entities.Money, orderNumber string) (string, error)
	Capture(ctx context.Context, providerRef string) error
	Cancel(ctx context.Context, providerRef string) error
}

type ProfileGateway interface {
	GetActor(ctx context.Context, actorID int64) (*entities.Actor, error)
}

type ExpiryScheduler interface {
	Schedule(orderID int64, at time.Time)
	Cancel(orderID int64)
}

type Notifier interface {
	PaymentRequested(ctx context.Context, order entities.Order) error
	OrderStatusChanged(ctx context.Context, order entities.Order) error
	OrderExpired(ctx context.Context, expired entities.ExpiredOrder) error
	PayoutDistributed(ctx context.Context, order entities.Order, credits []entities.CommissionCredit) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
