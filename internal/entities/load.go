package entities

import "time"

type Load struct {
	ID              int64
	CreatorID       int64
	OriginLat       float64
	OriginLon       float64
	DestinationLat  float64
	DestinationLon  float64
	DistanceKm      float64
	CargoType       string
	WeightKg        int64
	VehicleTypes    []VehicleType
	Price           Money
	LowestBidAmount *Money
	Status          LoadStatusType
	AcceptedBidID   *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type LoadStatusType string

const (
	LoadPosted    LoadStatusType = "posted"
	LoadBidding   LoadStatusType = "bidding"
	LoadAssigned  LoadStatusType = "assigned"
	LoadInTransit LoadStatusType = "in_transit"
	LoadDelivered LoadStatusType = "delivered"
	LoadCancelled LoadStatusType = "cancelled"
)

const DefaultLoadStatus = LoadPosted

func (t LoadStatusType) String() string {
	return string(t)
}

// Open загруз еще принимает ставки.
func (t LoadStatusType) Open() bool {
	return t == LoadPosted || t == LoadBidding
}

// AcceptsVehicle true, если транспорт водителя подходит под требования
// загруза. Пустой список или "any" принимают любой транспорт.
func (l Load) AcceptsVehicle(v VehicleType) bool {
	if len(l.VehicleTypes) == 0 {
		return true
	}
	for _, required := range l.VehicleTypes {
		if required == VehicleAny || required == v {
			return true
		}
	}
	return false
}

// MatchedLoad загруз, подобранный водителю, с метриками близости.
type MatchedLoad struct {
	Load             Load
	OriginDistanceKm float64
	DeviationKm      float64
}

type LoadModify struct {
	ID              *int64
	CreatorID       *int64
	OriginLat       *float64
	OriginLon       *float64
	DestinationLat  *float64
	DestinationLon  *float64
	DistanceKm      *float64
	CargoType       *string
	WeightKg        *int64
	VehicleTypes    *[]VehicleType
	Price           *Money
	LowestBidAmount *Money
	Status          *LoadStatusType
	AcceptedBidID   *int64
}
