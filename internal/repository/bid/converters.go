package bid

import "freight/internal/entities"

func ToDomain(b *BidDB) *entities.Bid {
	if b == nil {
		return nil
	}
	return &entities.Bid{
		ID:        b.ID,
		LoadID:    b.LoadID,
		DriverID:  b.DriverID,
		Amount:    entities.Money(b.Amount),
		Comment:   b.Comment,
		Status:    entities.BidStatusType(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func ToLoadDomain(l *LoadRowDB) *entities.Load {
	if l == nil {
		return nil
	}

	vehicleTypes := make([]entities.VehicleType, 0, len(l.VehicleTypes))
	for _, v := range l.VehicleTypes {
		vehicleTypes = append(vehicleTypes, entities.VehicleType(v))
	}

	var lowestBid *entities.Money
	if l.LowestBidAmount != nil {
		amount := entities.Money(*l.LowestBidAmount)
		lowestBid = &amount
	}

	return &entities.Load{
		ID:              l.ID,
		CreatorID:       l.CreatorID,
		WeightKg:        l.WeightKg,
		VehicleTypes:    vehicleTypes,
		LowestBidAmount: lowestBid,
		Status:          entities.LoadStatusType(l.Status),
		AcceptedBidID:   l.AcceptedBidID,
	}
}

func ToDriverDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:            d.ID,
		Name:          d.Name,
		Phone:         d.Phone,
		VehicleType:   entities.VehicleType(d.VehicleType),
		CapacityKg:    d.CapacityKg,
		CurrentLoadKg: d.CurrentLoadKg,
		Status:        entities.DriverStatusType(d.Status),
		ReferrerID:    d.ReferrerID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
