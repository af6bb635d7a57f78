package entities

import "time"

type Bid struct {
	ID        int64
	LoadID    int64
	DriverID  int64
	Amount    Money
	Comment   string
	Status    BidStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BidStatusType string

// Отозванная водителем ставка не получает отдельного статуса: строка
// удаляется целиком.
const (
	BidPending  BidStatusType = "pending"
	BidAccepted BidStatusType = "accepted"
	BidRejected BidStatusType = "rejected"
)

const DefaultBidStatus = BidPending

func (t BidStatusType) String() string {
	return string(t)
}

type BidModify struct {
	ID     *int64
	Amount *Money
	Status *BidStatusType
}
