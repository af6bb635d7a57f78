package wallet

import (
	"context"
	"fmt"
	"sort"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type Wallet struct {
	repository Repository
	profiles   ProfileGateway
	txManager  TxManager
	log        logger.Logger
}

func New(repository Repository, profiles ProfileGateway, txManager TxManager, log logger.Logger) *Wallet {
	return &Wallet{
		repository: repository,
		profiles:   profiles,
		txManager:  txManager,
		log:        log,
	}
}

// DistributeOrderPayout раскладывает сумму заказа на каскад реферальных
// комиссий и остаток водителю. Вызывается внутри транзакции завершения
// заказа, поэтому сам транзакцию не открывает.
//
// Уровень 1 считается от суммы заказа, каждый следующий — от комиссии
// предыдущего уровня. Остаток водителю равен сумме заказа за вычетом
// всех комиссий, так что начисления сходятся с суммой копейка в копейку.
func (w *Wallet) DistributeOrderPayout(ctx context.Context, order entities.Order) ([]entities.CommissionCredit, error) {
	rules, err := w.repository.GetCommissionRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("get commission rules: %w", err)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Level < rules[j].Level })

	credits, err := w.buildCascade(ctx, order.DriverID, order.Amount, rules)
	if err != nil {
		return nil, err
	}

	var commissionTotal entities.Money
	for _, credit := range credits {
		commissionTotal += credit.Amount
	}

	orderID := order.ID
	for _, credit := range credits {
		if err := w.credit(ctx, credit.UserID, credit.Amount, entities.WalletTransaction{
			OrderID: &orderID,
			Type:    entities.TransactionCommission,
			Level:   credit.Level,
			Amount:  credit.Amount,
		}); err != nil {
			return nil, fmt.Errorf("credit commission level %d: %w", credit.Level, err)
		}
	}

	driverShare := order.Amount - commissionTotal
	if err := w.credit(ctx, order.DriverID, driverShare, entities.WalletTransaction{
		OrderID: &orderID,
		Type:    entities.TransactionPayout,
		Amount:  driverShare,
	}); err != nil {
		return nil, fmt.Errorf("credit driver payout: %w", err)
	}

	credits = append(credits, entities.CommissionCredit{
		UserID: order.DriverID,
		Amount: driverShare,
	})
	return credits, nil
}

// buildCascade обходит реферальную цепочку водителя вверх, не глубже
// MaxReferralDepth уровней. Обрыв цепочки останавливает каскад, цикл —
// ошибка целостности.
func (w *Wallet) buildCascade(ctx context.Context, driverID int64, amount entities.Money, rules []entities.CommissionRule) ([]entities.CommissionCredit, error) {
	visited := map[int64]struct{}{driverID: {}}
	credits := make([]entities.CommissionCredit, 0, len(rules))

	currentUser := driverID
	base := amount
	for _, rule := range rules {
		if rule.Level > entities.MaxReferralDepth {
			break
		}

		referrerID, err := w.repository.GetReferrer(ctx, currentUser)
		if err != nil {
			return nil, fmt.Errorf("get referrer of %d: %w", currentUser, err)
		}
		if referrerID == nil {
			break
		}
		if _, seen := visited[*referrerID]; seen {
			return nil, fmt.Errorf("%w: user %d", ErrReferralCycle, *referrerID)
		}
		visited[*referrerID] = struct{}{}

		commission := rule.Rate.Apply(base)
		if commission <= 0 {
			break
		}

		credits = append(credits, entities.CommissionCredit{
			UserID: *referrerID,
			Level:  rule.Level,
			Amount: commission,
		})

		currentUser = *referrerID
		base = commission
	}

	return credits, nil
}

func (w *Wallet) Withdraw(ctx context.Context, actorID int64, amount entities.Money) (*entities.Wallet, error) {
	if actorID <= 0 {
		return nil, ErrInvalidOwner
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	actor, err := w.profiles.GetActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("resolve actor: %w", err)
	}
	if !actor.Role.Can(entities.CapWithdraw) {
		return nil, ErrForbidden
	}

	var updated *entities.Wallet
	err = w.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := w.repository.GetOrCreateForUpdate(ctx, actorID)
		if err != nil {
			return fmt.Errorf("get wallet: %w", err)
		}
		if current.Balance < amount {
			return ErrInsufficientBalance
		}

		if err := w.repository.Debit(ctx, current.ID, amount); err != nil {
			return fmt.Errorf("debit wallet: %w", err)
		}

		err = w.repository.AddTransaction(ctx, entities.WalletTransaction{
			WalletID: current.ID,
			Type:     entities.TransactionWithdrawal,
			Amount:   -amount,
		})
		if err != nil {
			return fmt.Errorf("record withdrawal: %w", err)
		}

		updated, err = w.repository.GetByOwner(ctx, actorID)
		if err != nil {
			return fmt.Errorf("reload wallet: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (w *Wallet) GetWallet(ctx context.Context, actorID int64) (*entities.Wallet, []entities.WalletTransaction, error) {
	if actorID <= 0 {
		return nil, nil, ErrInvalidOwner
	}

	current, err := w.repository.GetByOwner(ctx, actorID)
	if err != nil {
		return nil, nil, fmt.Errorf("get wallet: %w", err)
	}

	transactions, err := w.repository.ListTransactions(ctx, current.ID, 50)
	if err != nil {
		return nil, nil, fmt.Errorf("list transactions: %w", err)
	}

	return current, transactions, nil
}

func (w *Wallet) credit(ctx context.Context, ownerID int64, amount entities.Money, transaction entities.WalletTransaction) error {
	target, err := w.repository.GetOrCreateForUpdate(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("get wallet: %w", err)
	}
	if err := w.repository.Credit(ctx, target.ID, amount); err != nil {
		return fmt.Errorf("credit wallet: %w", err)
	}

	transaction.WalletID = target.ID
	if err := w.repository.AddTransaction(ctx, transaction); err != nil {
		return fmt.Errorf("record transaction: %w", err)
	}
	return nil
}
