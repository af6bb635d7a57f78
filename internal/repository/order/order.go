package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"freight/internal/entities"
	"freight/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, number, load_id, bid_id, creator_id, driver_id, amount,
		status, payout_done, expires_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `
		INSERT INTO orders (number, load_id, bid_id, creator_id, driver_id, amount, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.Number,
		orderEntity.LoadID,
		orderEntity.BidID,
		orderEntity.CreatorID,
		orderEntity.DriverID,
		int64(orderEntity.Amount),
		orderEntity.Status.String(),
		orderEntity.ExpiresAt,
	).Scan(scanTargets(&orderDB)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getByID(ctx, id, false)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&orderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModify.Status != nil {
		builder = builder.Set("status", orderModify.Status.String())
	}
	if orderModify.PayoutDone != nil {
		builder = builder.Set("payout_done", orderModify.PayoutDone)
	}
	if orderModify.ExpiresAt != nil {
		builder = builder.Set("expires_at", orderModify.ExpiresAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModify.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&orderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) NextNumber(ctx context.Context) (int64, error) {
	var seq int64
	err := r.querier.QueryRow(ctx, `SELECT nextval('order_number_seq')`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository next number error: %w", err)
	}
	return seq, nil
}

// ExpireByID переводит заказ в expired строго из bid_accepted. Условие в
// WHERE дает эффект ровно-один-раз: опоздавший таймер не найдет строку.
func (r *Repository) ExpireByID(ctx context.Context, id int64) (*entities.ExpiredOrder, error) {
	query := `
		UPDATE orders
		SET status = 'expired', updated_at = NOW()
		WHERE id = $1 AND status = 'bid_accepted'
		RETURNING id, load_id, bid_id, driver_id
	`

	var expired entities.ExpiredOrder
	err := r.querier.QueryRow(ctx, query, id).
		Scan(&expired.OrderID, &expired.LoadID, &expired.BidID, &expired.DriverID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected order repository expire error: %w", err)
	}

	return &expired, nil
}

func (r *Repository) ExpireOverdue(ctx context.Context, now time.Time) ([]entities.ExpiredOrder, error) {
	query := `
		UPDATE orders
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'bid_accepted' AND expires_at <= $1
		RETURNING id, load_id, bid_id, driver_id
	`

	rows, err := r.querier.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository expire overdue error: %w", err)
	}
	defer rows.Close()

	expiredOrders := make([]entities.ExpiredOrder, 0, 8)
	for rows.Next() {
		var expired entities.ExpiredOrder
		err := rows.Scan(&expired.OrderID, &expired.LoadID, &expired.BidID, &expired.DriverID)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository expire overdue error: %w", err)
		}
		expiredOrders = append(expiredOrders, expired)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository expire overdue error: %w", err)
	}

	return expiredOrders, nil
}

func (r *Repository) ListPendingExpiry(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = 'bid_accepted' ORDER BY expires_at`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending expiry error: %w", err)
	}
	defer rows.Close()

	orders := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		if err := rows.Scan(scanTargets(&orderDB)...); err != nil {
			return nil, fmt.Errorf("unexpected order repository list pending expiry error: %w", err)
		}
		orders = append(orders, orderDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending expiry error: %w", err)
	}

	return ToDomainList(orders), nil
}

func (r *Repository) CreatePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error) {
	query := `
		INSERT INTO payments (order_id, provider_ref, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, provider_ref, amount, status, created_at, updated_at
	`

	var paymentDB PaymentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		payment.OrderID,
		payment.ProviderRef,
		int64(payment.Amount),
		payment.Status.String(),
	).Scan(
		&paymentDB.ID,
		&paymentDB.OrderID,
		&paymentDB.ProviderRef,
		&paymentDB.Amount,
		&paymentDB.Status,
		&paymentDB.CreatedAt,
		&paymentDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create payment error: %w", err)
	}

	return ToPaymentDomain(&paymentDB), nil
}

func (r *Repository) GetPaymentForUpdate(ctx context.Context, orderID int64) (*entities.Payment, error) {
	query := `
		SELECT id, order_id, provider_ref, amount, status, created_at, updated_at
		FROM payments
		WHERE order_id = $1
		FOR UPDATE
	`

	var paymentDB PaymentDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&paymentDB.ID,
			&paymentDB.OrderID,
			&paymentDB.ProviderRef,
			&paymentDB.Amount,
			&paymentDB.Status,
			&paymentDB.CreatedAt,
			&paymentDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get payment error: %w", err)
	}

	return ToPaymentDomain(&paymentDB), nil
}

func (r *Repository) UpdatePaymentStatus(ctx context.Context, paymentID int64, status entities.PaymentStatusType) error {
	query := `
		UPDATE payments SET status = $2, updated_at = NOW() WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, paymentID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository update payment error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return order.ErrPaymentNotFound
	}

	return nil
}

// ReopenLoad возвращает загруз в торги после истечения заказа: bidding,
// если остались активные ставки, иначе posted.
func (r *Repository) ReopenLoad(ctx context.Context, loadID int64) (entities.LoadStatusType, error) {
	query := `
		UPDATE loads
		SET status = CASE
				WHEN EXISTS (SELECT 1 FROM bids WHERE load_id = $1 AND status = 'pending')
				THEN 'bidding' ELSE 'posted'
			END,
			accepted_bid_id = NULL,
			lowest_bid_amount = (
				SELECT MIN(amount) FROM bids WHERE load_id = $1 AND status = 'pending'
			),
			updated_at = NOW()
		WHERE id = $1
		RETURNING status
	`

	var status string
	err := r.querier.QueryRow(ctx, query, loadID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", order.ErrOrderNotFound
		}
		return "", fmt.Errorf("unexpected order repository reopen load error: %w", err)
	}

	return entities.LoadStatusType(status), nil
}

func (r *Repository) SetLoadStatus(ctx context.Context, loadID int64, status entities.LoadStatusType) error {
	query := `
		UPDATE loads SET status = $2, updated_at = NOW() WHERE id = $1
	`

	_, err := r.querier.Exec(ctx, query, loadID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository set load status error: %w", err)
	}

	return nil
}

func (r *Repository) MarkBidRejected(ctx context.Context, bidID int64) error {
	query := `
		UPDATE bids SET status = 'rejected', updated_at = NOW() WHERE id = $1
	`

	_, err := r.querier.Exec(ctx, query, bidID)
	if err != nil {
		return fmt.Errorf("unexpected order repository mark bid rejected error: %w", err)
	}

	return nil
}

// AssignDriverLoad добавляет вес загруза к текущей загрузке водителя и
// помечает его занятым.
func (r *Repository) AssignDriverLoad(ctx context.Context, driverID, loadID int64) error {
	query := `
		UPDATE drivers
		SET current_load_kg = current_load_kg + (SELECT weight_kg FROM loads WHERE id = $2),
			status = 'busy',
			updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.querier.Exec(ctx, query, driverID, loadID)
	if err != nil {
		return fmt.Errorf("unexpected order repository assign driver load error: %w", err)
	}

	return nil
}

// ReleaseDriverLoad снимает вес загруза с водителя. Когда загрузка
// обнулилась, водитель снова доступен.
func (r *Repository) ReleaseDriverLoad(ctx context.Context, driverID, loadID int64) error {
	query := `
		UPDATE drivers
		SET current_load_kg = GREATEST(current_load_kg - (SELECT weight_kg FROM loads WHERE id = $2), 0),
			status = CASE
				WHEN current_load_kg - (SELECT weight_kg FROM loads WHERE id = $2) <= 0 THEN 'available'
				ELSE status
			END,
			updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.querier.Exec(ctx, query, driverID, loadID)
	if err != nil {
		return fmt.Errorf("unexpected order repository release driver load error: %w", err)
	}

	return nil
}

func scanTargets(o *OrderDB) []interface{} {
	return []interface{}{
		&o.ID,
		&o.Number,
		&o.LoadID,
		&o.BidID,
		&o.CreatorID,
		&o.DriverID,
		&o.Amount,
		&o.Status,
		&o.PayoutDone,
		&o.ExpiresAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}
