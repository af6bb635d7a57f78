package order

import "freight/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:         o.ID,
		Number:     o.Number,
		LoadID:     o.LoadID,
		BidID:      o.BidID,
		CreatorID:  o.CreatorID,
		DriverID:   o.DriverID,
		Amount:     entities.Money(o.Amount),
		Status:     entities.OrderStatusType(o.Status),
		PayoutDone: o.PayoutDone,
		ExpiresAt:  o.ExpiresAt,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func ToDomainList(orders []OrderDB) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for i := range orders {
		result = append(result, *ToDomain(&orders[i]))
	}
	return result
}

func ToPaymentDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}
	return &entities.Payment{
		ID:          p.ID,
		OrderID:     p.OrderID,
		ProviderRef: p.ProviderRef,
		Amount:      entities.Money(p.Amount),
		Status:      entities.PaymentStatusType(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
