package wallet

import "time"

type WalletDB struct {
	ID             int64
	OwnerID        int64
	Balance        int64
	TotalEarned    int64
	TotalWithdrawn int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type TransactionDB struct {
	ID        int64
	WalletID  int64
	OrderID   *int64
	Type      string
	Level     int
	Amount    int64
	CreatedAt time.Time
}

type CommissionRuleDB struct {
	Level int
	Rate  int64
}
