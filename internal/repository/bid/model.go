package bid

import "time"

type BidDB struct {
	ID        int64
	LoadID    int64
	DriverID  int64
	Amount    int64
	Comment   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LoadRowDB проекция строки загруза, достаточная для решений по ставкам.
type LoadRowDB struct {
	ID              int64
	CreatorID       int64
	WeightKg        int64
	VehicleTypes    []string
	LowestBidAmount *int64
	Status          string
	AcceptedBidID   *int64
}

type DriverDB struct {
	ID            int64
	Name          string
	Phone         string
	VehicleType   string
	CapacityKg    int64
	CurrentLoadKg int64
	Status        string
	ReferrerID    *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
