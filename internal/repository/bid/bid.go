package bid

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/bid"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const bidColumns = `id, load_id, driver_id, amount, comment, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, bidModify entities.BidModify, loadID, driverID int64, comment string) (*entities.Bid, error) {
	query := `
		INSERT INTO bids (load_id, driver_id, amount, comment, status)
		VALUES ($1, $2, $3, $4, 'pending')
		RETURNING ` + bidColumns

	var bidDB BidDB
	err := r.querier.QueryRow(ctx, query, loadID, driverID, int64(*bidModify.Amount), comment).
		Scan(
			&bidDB.ID,
			&bidDB.LoadID,
			&bidDB.DriverID,
			&bidDB.Amount,
			&bidDB.Comment,
			&bidDB.Status,
			&bidDB.CreatedAt,
			&bidDB.UpdatedAt,
		)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, bid.ErrDuplicateBid
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, bid.ErrInvalidAmount
		}
		return nil, fmt.Errorf("unexpected bid repository create error: %w", err)
	}

	return ToDomain(&bidDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE id = $1`

	var bidDB BidDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&bidDB.ID,
			&bidDB.LoadID,
			&bidDB.DriverID,
			&bidDB.Amount,
			&bidDB.Comment,
			&bidDB.Status,
			&bidDB.CreatedAt,
			&bidDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bid.ErrBidNotFound
		}
		return nil, fmt.Errorf("unexpected bid repository getbyid error: %w", err)
	}

	return ToDomain(&bidDB), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.BidStatusType) (*entities.Bid, error) {
	query := `
		UPDATE bids
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bidColumns

	var bidDB BidDB
	err := r.querier.QueryRow(ctx, query, id, status.String()).
		Scan(
			&bidDB.ID,
			&bidDB.LoadID,
			&bidDB.DriverID,
			&bidDB.Amount,
			&bidDB.Comment,
			&bidDB.Status,
			&bidDB.CreatedAt,
			&bidDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bid.ErrBidNotFound
		}
		return nil, fmt.Errorf("unexpected bid repository update status error: %w", err)
	}

	return ToDomain(&bidDB), nil
}

// Delete жесткое удаление ставки при отзыве водителем.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bids WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected bid repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return bid.ErrBidNotFound
	}

	return nil
}

func (r *Repository) RejectPendingByLoad(ctx context.Context, loadID, exceptBidID int64) (int64, error) {
	query := `
		UPDATE bids
		SET status = 'rejected', updated_at = NOW()
		WHERE load_id = $1 AND id != $2 AND status = 'pending'
	`

	result, err := r.querier.Exec(ctx, query, loadID, exceptBidID)
	if err != nil {
		return 0, fmt.Errorf("unexpected bid repository reject pending error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) GetLoadForUpdate(ctx context.Context, loadID int64) (*entities.Load, error) {
	query := `
		SELECT id, creator_id, weight_kg, vehicle_types, lowest_bid_amount, status, accepted_bid_id
		FROM loads
		WHERE id = $1
		FOR UPDATE
	`

	var loadDB LoadRowDB
	err := r.querier.QueryRow(ctx, query, loadID).
		Scan(
			&loadDB.ID,
			&loadDB.CreatorID,
			&loadDB.WeightKg,
			&loadDB.VehicleTypes,
			&loadDB.LowestBidAmount,
			&loadDB.Status,
			&loadDB.AcceptedBidID,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bid.ErrLoadNotFound
		}
		return nil, fmt.Errorf("unexpected bid repository get load error: %w", err)
	}

	return ToLoadDomain(&loadDB), nil
}

func (r *Repository) UpdateLoad(ctx context.Context, loadModify entities.LoadModify) error {
	builder := qb.
		Update("loads")

	if loadModify.Status != nil {
		builder = builder.Set("status", loadModify.Status.String())
	}
	if loadModify.LowestBidAmount != nil {
		builder = builder.Set("lowest_bid_amount", int64(*loadModify.LowestBidAmount))
	}
	if loadModify.AcceptedBidID != nil {
		builder = builder.Set("accepted_bid_id", loadModify.AcceptedBidID)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": loadModify.ID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected bid repository update load error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected bid repository update load error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return bid.ErrLoadNotFound
	}

	return nil
}

// RecomputeLowestBid пересчитывает минимальную активную ставку после
// отклонения или отзыва.
func (r *Repository) RecomputeLowestBid(ctx context.Context, loadID int64) error {
	query := `
		UPDATE loads
		SET lowest_bid_amount = (
			SELECT MIN(amount) FROM bids WHERE load_id = $1 AND status = 'pending'
		),
		updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.querier.Exec(ctx, query, loadID)
	if err != nil {
		return fmt.Errorf("unexpected bid repository recompute lowest bid error: %w", err)
	}

	return nil
}

func (r *Repository) GetDriver(ctx context.Context, driverID int64) (*entities.Driver, error) {
	query := `
		SELECT id, name, phone, vehicle_type, capacity_kg, current_load_kg, status, referrer_id, created_at, updated_at
		FROM drivers
		WHERE id = $1
	`

	var driverDB DriverDB
	err := r.querier.QueryRow(ctx, query, driverID).
		Scan(
			&driverDB.ID,
			&driverDB.Name,
			&driverDB.Phone,
			&driverDB.VehicleType,
			&driverDB.CapacityKg,
			&driverDB.CurrentLoadKg,
			&driverDB.Status,
			&driverDB.ReferrerID,
			&driverDB.CreatedAt,
			&driverDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bid.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected bid repository get driver error: %w", err)
	}

	return ToDriverDomain(&driverDB), nil
}
