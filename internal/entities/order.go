package entities

import "time"

type Order struct {
	ID         int64
	Number     string
	LoadID     int64
	BidID      int64
	CreatorID  int64
	DriverID   int64
	Amount     Money
	Status     OrderStatusType
	PayoutDone bool
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderStatusType string

const (
	OrderBidAccepted    OrderStatusType = "bid_accepted"
	OrderDriverAccepted OrderStatusType = "driver_accepted"
	OrderPickedUp       OrderStatusType = "picked_up"
	OrderInTransit      OrderStatusType = "in_transit"
	OrderCompleted      OrderStatusType = "completed"
	OrderFailed         OrderStatusType = "failed"
	OrderExpired        OrderStatusType = "expired"
)

func (t OrderStatusType) String() string {
	return string(t)
}

// Terminal статус, из которого нет переходов.
func (t OrderStatusType) Terminal() bool {
	return t == OrderCompleted || t == OrderFailed || t == OrderExpired
}

// orderTransitions допустимые переходы статусов заказа. Погрузка
// возможна только после подтверждения водителем: пока его нет, заказ
// ждет в bid_accepted и может истечь по таймеру.
var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderBidAccepted:    {OrderDriverAccepted, OrderFailed, OrderExpired},
	OrderDriverAccepted: {OrderPickedUp, OrderFailed},
	OrderPickedUp:       {OrderInTransit, OrderFailed},
	OrderInTransit:      {OrderCompleted, OrderFailed},
}

// CanTransition проверяет допустимость перехода from -> to.
func (t OrderStatusType) CanTransition(to OrderStatusType) bool {
	for _, next := range orderTransitions[t] {
		if next == to {
			return true
		}
	}
	return false
}

// ExpiredOrder результат перевода просроченного заказа в expired,
// достаточный для возврата загруза в торги.
type ExpiredOrder struct {
	OrderID  int64
	LoadID   int64
	BidID    int64
	DriverID int64
}

type OrderModify struct {
	ID         *int64
	Status     *OrderStatusType
	PayoutDone *bool
	ExpiresAt  *time.Time
}

type Payment struct {
	ID          int64
	OrderID     int64
	ProviderRef string
	Amount      Money
	Status      PaymentStatusType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PaymentStatusType string

const (
	PaymentAuthorized PaymentStatusType = "authorized"
	PaymentCaptured   PaymentStatusType = "captured"
	PaymentCancelled  PaymentStatusType = "cancelled"
)

func (t PaymentStatusType) String() string {
	return string(t)
}
