package load

import "time"

type LoadDB struct {
	ID              int64
	CreatorID       int64
	OriginLat       float64
	OriginLon       float64
	DestinationLat  float64
	DestinationLon  float64
	DistanceKm      float64
	CargoType       string
	WeightKg        int64
	VehicleTypes    []string
	Price           int64
	LowestBidAmount *int64
	Status          string
	AcceptedBidID   *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type LoadModifyDB struct {
	ID              *int64
	CreatorID       *int64
	OriginLat       *float64
	OriginLon       *float64
	DestinationLat  *float64
	DestinationLon  *float64
	DistanceKm      *float64
	CargoType       *string
	WeightKg        *int64
	VehicleTypes    *[]string
	Price           *int64
	LowestBidAmount *int64
	Status          *string
	AcceptedBidID   *int64
}
