package load

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/load"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const loadColumns = `id, creator_id, origin_lat, origin_lon, destination_lat, destination_lon,
		distance_km, cargo_type, weight_kg, vehicle_types, price, lowest_bid_amount,
		status, accepted_bid_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, loadModify entities.LoadModify) (*entities.Load, error) {
	loadModifyDB := FromDomainModify(&loadModify)

	query := `
		INSERT INTO loads (creator_id, origin_lat, origin_lon, destination_lat, destination_lon,
			distance_km, cargo_type, weight_kg, vehicle_types, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + loadColumns

	var loadDB LoadDB
	err := r.querier.QueryRow(
		ctx,
		query,
		loadModifyDB.CreatorID,
		loadModifyDB.OriginLat,
		loadModifyDB.OriginLon,
		loadModifyDB.DestinationLat,
		loadModifyDB.DestinationLon,
		loadModifyDB.DistanceKm,
		loadModifyDB.CargoType,
		loadModifyDB.WeightKg,
		loadModifyDB.VehicleTypes,
		loadModifyDB.Price,
		loadModifyDB.Status,
	).Scan(scanTargets(&loadDB)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository create error: %w", err)
	}

	return ToDomain(&loadDB), nil
}

func (r *Repository) Update(ctx context.Context, loadModify entities.LoadModify) (*entities.Load, error) {
	loadModifyDB := FromDomainModify(&loadModify)

	builder := qb.
		Update("loads")

	// опциональные поля
	if loadModifyDB.OriginLat != nil {
		builder = builder.Set("origin_lat", loadModifyDB.OriginLat)
	}
	if loadModifyDB.OriginLon != nil {
		builder = builder.Set("origin_lon", loadModifyDB.OriginLon)
	}
	if loadModifyDB.DestinationLat != nil {
		builder = builder.Set("destination_lat", loadModifyDB.DestinationLat)
	}
	if loadModifyDB.DestinationLon != nil {
		builder = builder.Set("destination_lon", loadModifyDB.DestinationLon)
	}
	if loadModifyDB.DistanceKm != nil {
		builder = builder.Set("distance_km", loadModifyDB.DistanceKm)
	}
	if loadModifyDB.CargoType != nil {
		builder = builder.Set("cargo_type", loadModifyDB.CargoType)
	}
	if loadModifyDB.WeightKg != nil {
		builder = builder.Set("weight_kg", loadModifyDB.WeightKg)
	}
	if loadModifyDB.VehicleTypes != nil {
		builder = builder.Set("vehicle_types", *loadModifyDB.VehicleTypes)
	}
	if loadModifyDB.Price != nil {
		builder = builder.Set("price", loadModifyDB.Price)
	}
	if loadModifyDB.LowestBidAmount != nil {
		builder = builder.Set("lowest_bid_amount", loadModifyDB.LowestBidAmount)
	}
	if loadModifyDB.Status != nil {
		builder = builder.Set("status", loadModifyDB.Status)
	}
	if loadModifyDB.AcceptedBidID != nil {
		builder = builder.Set("accepted_bid_id", loadModifyDB.AcceptedBidID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": loadModifyDB.ID}).
		Suffix("RETURNING " + loadColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository update error: %w", err)
	}

	var loadDB LoadDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&loadDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, load.ErrLoadNotFound
		}
		return nil, fmt.Errorf("unexpected load repository update error: %w", err)
	}

	return ToDomain(&loadDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM loads WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return load.ErrLoadHasBids
		}
		return fmt.Errorf("unexpected load repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return load.ErrLoadNotFound
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Load, error) {
	return r.getByID(ctx, id, false)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Load, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*entities.Load, error) {
	query := `SELECT ` + loadColumns + ` FROM loads WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var loadDB LoadDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&loadDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, load.ErrLoadNotFound
		}
		return nil, fmt.Errorf("unexpected load repository getbyid error: %w", err)
	}

	return ToDomain(&loadDB), nil
}

// CountBids считает все строки ставок по загрузу, включая отклоненные:
// любая из них держит внешний ключ и блокирует удаление.
func (r *Repository) CountBids(ctx context.Context, loadID int64) (int64, error) {
	query := `
		SELECT COUNT(*) FROM bids WHERE load_id = $1
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, loadID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected load repository count bids error: %w", err)
	}

	return count, nil
}

func scanTargets(l *LoadDB) []interface{} {
	return []interface{}{
		&l.ID,
		&l.CreatorID,
		&l.OriginLat,
		&l.OriginLon,
		&l.DestinationLat,
		&l.DestinationLon,
		&l.DistanceKm,
		&l.CargoType,
		&l.WeightKg,
		&l.VehicleTypes,
		&l.Price,
		&l.LowestBidAmount,
		&l.Status,
		&l.AcceptedBidID,
		&l.CreatedAt,
		&l.UpdatedAt,
	}
}
