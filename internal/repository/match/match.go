package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"freight/internal/entities"
	loadrepo "freight/internal/repository/load"
	"freight/internal/service/match"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ListOpenLoads все загрузы, принимающие ставки. Геофильтрация делается
// сервисом в памяти: открытых загрузов немного, индекс по координатам
// не нужен.
func (r *Repository) ListOpenLoads(ctx context.Context) ([]entities.Load, error) {
	query := `
		SELECT id, creator_id, origin_lat, origin_lon, destination_lat, destination_lon,
			distance_km, cargo_type, weight_kg, vehicle_types, price, lowest_bid_amount,
			status, accepted_bid_id, created_at, updated_at
		FROM loads
		WHERE status IN ('posted', 'bidding')
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected match repository list open loads error: %w", err)
	}
	defer rows.Close()

	loads := make([]loadrepo.LoadDB, 0, 32)
	for rows.Next() {
		var loadDB loadrepo.LoadDB
		err := rows.Scan(
			&loadDB.ID,
			&loadDB.CreatorID,
			&loadDB.OriginLat,
			&loadDB.OriginLon,
			&loadDB.DestinationLat,
			&loadDB.DestinationLon,
			&loadDB.DistanceKm,
			&loadDB.CargoType,
			&loadDB.WeightKg,
			&loadDB.VehicleTypes,
			&loadDB.Price,
			&loadDB.LowestBidAmount,
			&loadDB.Status,
			&loadDB.AcceptedBidID,
			&loadDB.CreatedAt,
			&loadDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected match repository list open loads error: %w", err)
		}
		loads = append(loads, loadDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected match repository list open loads error: %w", err)
	}

	return loadrepo.ToDomainList(loads), nil
}

func (r *Repository) GetDriver(ctx context.Context, driverID int64) (*entities.Driver, error) {
	query := `
		SELECT id, name, phone, vehicle_type, capacity_kg, current_load_kg, status, referrer_id, created_at, updated_at
		FROM drivers
		WHERE id = $1
	`

	var driver entities.Driver
	var vehicleType, status string
	err := r.querier.QueryRow(ctx, query, driverID).
		Scan(
			&driver.ID,
			&driver.Name,
			&driver.Phone,
			&vehicleType,
			&driver.CapacityKg,
			&driver.CurrentLoadKg,
			&status,
			&driver.ReferrerID,
			&driver.CreatedAt,
			&driver.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, match.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected match repository get driver error: %w", err)
	}

	driver.VehicleType = entities.VehicleType(vehicleType)
	driver.Status = entities.DriverStatusType(status)
	return &driver, nil
}
