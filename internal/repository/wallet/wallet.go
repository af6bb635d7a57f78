package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/wallet"
)

const walletColumns = `id, owner_id, balance, total_earned, total_withdrawn, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetOrCreateForUpdate возвращает кошелек владельца под блокировкой.
// Кошелек заводится лениво при первом обращении.
func (r *Repository) GetOrCreateForUpdate(ctx context.Context, ownerID int64) (*entities.Wallet, error) {
	query := `
		INSERT INTO wallets (owner_id)
		VALUES ($1)
		ON CONFLICT (owner_id) DO NOTHING
	`
	if _, err := r.querier.Exec(ctx, query, ownerID); err != nil {
		return nil, fmt.Errorf("unexpected wallet repository create error: %w", err)
	}

	query = `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1 FOR UPDATE`

	var walletDB WalletDB
	err := r.querier.QueryRow(ctx, query, ownerID).Scan(scanTargets(&walletDB)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository get error: %w", err)
	}

	return ToDomain(&walletDB), nil
}

func (r *Repository) GetByOwner(ctx context.Context, ownerID int64) (*entities.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1`

	var walletDB WalletDB
	err := r.querier.QueryRow(ctx, query, ownerID).Scan(scanTargets(&walletDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository getbyowner error: %w", err)
	}

	return ToDomain(&walletDB), nil
}

func (r *Repository) Credit(ctx context.Context, walletID int64, amount entities.Money) error {
	query := `
		UPDATE wallets
		SET balance = balance + $2,
			total_earned = total_earned + $2,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, walletID, int64(amount))
	if err != nil {
		return fmt.Errorf("unexpected wallet repository credit error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return wallet.ErrWalletNotFound
	}

	return nil
}

// Debit уменьшает баланс. CHECK (balance >= 0) в схеме — последний
// рубеж против отрицательного баланса при конкурентных списаниях.
func (r *Repository) Debit(ctx context.Context, walletID int64, amount entities.Money) error {
	query := `
		UPDATE wallets
		SET balance = balance - $2,
			total_withdrawn = total_withdrawn + $2,
			updated_at = NOW()
		WHERE id = $1 AND balance >= $2
	`

	result, err := r.querier.Exec(ctx, query, walletID, int64(amount))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return wallet.ErrInsufficientBalance
		}
		return fmt.Errorf("unexpected wallet repository debit error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return wallet.ErrInsufficientBalance
	}

	return nil
}

func (r *Repository) AddTransaction(ctx context.Context, transaction entities.WalletTransaction) error {
	query := `
		INSERT INTO wallet_transactions (wallet_id, order_id, type, level, amount)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		transaction.WalletID,
		transaction.OrderID,
		transaction.Type.String(),
		transaction.Level,
		int64(transaction.Amount),
	)
	if err != nil {
		return fmt.Errorf("unexpected wallet repository add transaction error: %w", err)
	}

	return nil
}

func (r *Repository) ListTransactions(ctx context.Context, walletID int64, limit int) ([]entities.WalletTransaction, error) {
	query := `
		SELECT id, wallet_id, order_id, type, level, amount, created_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.querier.Query(ctx, query, walletID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository list transactions error: %w", err)
	}
	defer rows.Close()

	transactions := make([]TransactionDB, 0, limit)
	for rows.Next() {
		var transactionDB TransactionDB
		err := rows.Scan(
			&transactionDB.ID,
			&transactionDB.WalletID,
			&transactionDB.OrderID,
			&transactionDB.Type,
			&transactionDB.Level,
			&transactionDB.Amount,
			&transactionDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected wallet repository list transactions error: %w", err)
		}
		transactions = append(transactions, transactionDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected wallet repository list transactions error: %w", err)
	}

	return ToTransactionDomainList(transactions), nil
}

func (r *Repository) GetCommissionRules(ctx context.Context) ([]entities.CommissionRule, error) {
	query := `
		SELECT level, rate_bp FROM commission_rules ORDER BY level
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository get rules error: %w", err)
	}
	defer rows.Close()

	rules := make([]CommissionRuleDB, 0, entities.MaxReferralDepth)
	for rows.Next() {
		var ruleDB CommissionRuleDB
		if err := rows.Scan(&ruleDB.Level, &ruleDB.Rate); err != nil {
			return nil, fmt.Errorf("unexpected wallet repository get rules error: %w", err)
		}
		rules = append(rules, ruleDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected wallet repository get rules error: %w", err)
	}

	return ToRuleDomainList(rules), nil
}

func (r *Repository) GetReferrer(ctx context.Context, userID int64) (*int64, error) {
	query := `
		SELECT referrer_id FROM referral_edges WHERE user_id = $1
	`

	var referrerID int64
	err := r.querier.QueryRow(ctx, query, userID).Scan(&referrerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected wallet repository get referrer error: %w", err)
	}

	return &referrerID, nil
}

func scanTargets(w *WalletDB) []interface{} {
	return []interface{}{
		&w.ID,
		&w.OwnerID,
		&w.Balance,
		&w.TotalEarned,
		&w.TotalWithdrawn,
		&w.CreatedAt,
		&w.UpdatedAt,
	}
}
