package order

import "time"

type OrderDB struct {
	ID         int64
	Number     string
	LoadID     int64
	BidID      int64
	CreatorID  int64
	DriverID   int64
	Amount     int64
	Status     string
	PayoutDone bool
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type PaymentDB struct {
	ID          int64
	OrderID     int64
	ProviderRef string
	Amount      int64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
