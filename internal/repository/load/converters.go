package load

import "freight/internal/entities"

func ToDomain(l *LoadDB) *entities.Load {
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
		OriginLat:       l.OriginLat,
		OriginLon:       l.OriginLon,
		DestinationLat:  l.DestinationLat,
		DestinationLon:  l.DestinationLon,
		DistanceKm:      l.DistanceKm,
		CargoType:       l.CargoType,
		WeightKg:        l.WeightKg,
		VehicleTypes:    vehicleTypes,
		Price:           entities.Money(l.Price),
		LowestBidAmount: lowestBid,
		Status:          entities.LoadStatusType(l.Status),
		AcceptedBidID:   l.AcceptedBidID,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func ToDomainList(loads []LoadDB) []entities.Load {
	result := make([]entities.Load, 0, len(loads))
	for i := range loads {
		result = append(result, *ToDomain(&loads[i]))
	}
	return result
}

func FromDomainModify(m *entities.LoadModify) *LoadModifyDB {
	if m == nil {
		return nil
	}
	modify := &LoadModifyDB{
		ID:             m.ID,
		CreatorID:      m.CreatorID,
		OriginLat:      m.OriginLat,
		OriginLon:      m.OriginLon,
		DestinationLat: m.DestinationLat,
		DestinationLon: m.DestinationLon,
		DistanceKm:     m.DistanceKm,
		CargoType:      m.CargoType,
		WeightKg:       m.WeightKg,
		AcceptedBidID:  m.AcceptedBidID,
	}

	if m.VehicleTypes != nil {
		vehicleTypes := make([]string, 0, len(*m.VehicleTypes))
		for _, v := range *m.VehicleTypes {
			vehicleTypes = append(vehicleTypes, v.String())
		}
		modify.VehicleTypes = &vehicleTypes
	}
	if m.Price != nil {
		price := int64(*m.Price)
		modify.Price = &price
	}
	if m.LowestBidAmount != nil {
		lowestBid := int64(*m.LowestBidAmount)
		modify.LowestBidAmount = &lowestBid
	}
	if m.Status != nil {
		status := m.Status.String()
		modify.Status = &status
	}

	return modify
}
