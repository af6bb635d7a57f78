package entities

import "time"

// Money денежная сумма в минорных единицах (копейки/центы).
type Money int64

// Rate ставка в базисных пунктах: 10000 = 100%.
type Rate int64

const RateDenominator = 10000

// Apply возвращает r-долю от суммы m с округлением вниз.
func (r Rate) Apply(m Money) Money {
	return Money(int64(m) * int64(r) / RateDenominator)
}

type Wallet struct {
	ID             int64
	OwnerID        int64
	Balance        Money
	TotalEarned    Money
	TotalWithdrawn Money
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type WalletTransaction struct {
	ID        int64
	WalletID  int64
	OrderID   *int64
	Type      WalletTransactionType
	Level     int
	Amount    Money
	CreatedAt time.Time
}

type WalletTransactionType string

const (
	TransactionPayout     WalletTransactionType = "payout"
	TransactionCommission WalletTransactionType = "commission"
	TransactionWithdrawal WalletTransactionType = "withdrawal"
)

func (t WalletTransactionType) String() string {
	return string(t)
}

// CommissionRule ставка реферальной комиссии для уровня level.
// Уровень 1 считается от суммы заказа, уровни выше — от комиссии
// предыдущего уровня.
type CommissionRule struct {
	Level int
	Rate  Rate
}

// MaxReferralDepth предел глубины обхода реферальной цепочки.
const MaxReferralDepth = 5

// CommissionCredit одно начисление в рамках распределения выплаты.
type CommissionCredit struct {
	UserID int64
	Level  int
	Amount Money
}

// ReferralEdge связь "пользователь -> его реферер".
type ReferralEdge struct {
	UserID     int64
	ReferrerID int64
	CreatedAt  time.Time
}
