package wallet

import "freight/internal/entities"

func ToDomain(w *WalletDB) *entities.Wallet {
	if w == nil {
		return nil
	}
	return &entities.Wallet{
		ID:             w.ID,
		OwnerID:        w.OwnerID,
		Balance:        entities.Money(w.Balance),
		TotalEarned:    entities.Money(w.TotalEarned),
		TotalWithdrawn: entities.Money(w.TotalWithdrawn),
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func ToTransactionDomainList(transactions []TransactionDB) []entities.WalletTransaction {
	result := make([]entities.WalletTransaction, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, entities.WalletTransaction{
			ID:        t.ID,
			WalletID:  t.WalletID,
			OrderID:   t.OrderID,
			Type:      entities.WalletTransactionType(t.Type),
			Level:     t.Level,
			Amount:    entities.Money(t.Amount),
			CreatedAt: t.CreatedAt,
		})
	}
	return result
}

func ToRuleDomainList(rules []CommissionRuleDB) []entities.CommissionRule {
	result := make([]entities.CommissionRule, 0, len(rules))
	for _, r := range rules {
		result = append(result, entities.CommissionRule{
			Level: r.Level,
			Rate:  entities.Rate(r.Rate),
		})
	}
	return result
}
