package tracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"freight/internal/entities"
	"freight/internal/service/tracking"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateRoute(ctx context.Context, route entities.RouteTracking) error {
	polyline, err := EncodePolyline(route.Polyline)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO route_tracking (order_id, polyline, total_km)
		VALUES ($1, $2, $3)
	`

	_, err = r.querier.Exec(ctx, query, route.OrderID, polyline, route.TotalKm)
	if err != nil {
		return fmt.Errorf("unexpected tracking repository create route error: %w", err)
	}

	return nil
}

func (r *Repository) GetRoute(ctx context.Context, orderID int64) (*entities.RouteTracking, error) {
	return r.getRoute(ctx, orderID, false)
}

func (r *Repository) GetRouteForUpdate(ctx context.Context, orderID int64) (*entities.RouteTracking, error) {
	return r.getRoute(ctx, orderID, true)
}

func (r *Repository) getRoute(ctx context.Context, orderID int64, forUpdate bool) (*entities.RouteTracking, error) {
	query := `
		SELECT order_id, polyline, total_km, progress_km, last_lat, last_lon,
			last_ping_at, avg_speed_kmh, updated_at
		FROM route_tracking
		WHERE order_id = $1
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var routeDB RouteTrackingDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&routeDB.OrderID,
			&routeDB.Polyline,
			&routeDB.TotalKm,
			&routeDB.ProgressKm,
			&routeDB.LastLat,
			&routeDB.LastLon,
			&routeDB.LastPingAt,
			&routeDB.AvgSpeedKmh,
			&routeDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracking.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected tracking repository get route error: %w", err)
	}

	return ToDomain(&routeDB)
}

func (r *Repository) UpdateRoute(ctx context.Context, route entities.RouteTracking) error {
	query := `
		UPDATE route_tracking
		SET progress_km = $2,
			last_lat = $3,
			last_lon = $4,
			last_ping_at = $5,
			avg_speed_kmh = $6,
			updated_at = NOW()
		WHERE order_id = $1
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		route.OrderID,
		route.ProgressKm,
		route.LastLat,
		route.LastLon,
		route.LastPingAt,
		route.AvgSpeedKmh,
	)
	if err != nil {
		return fmt.Errorf("unexpected tracking repository update route error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return tracking.ErrRouteNotFound
	}

	return nil
}

func (r *Repository) InsertPing(ctx context.Context, ping entities.LocationPing) (*entities.LocationPing, error) {
	query := `
		INSERT INTO location_pings (order_id, driver_id, lat, lon, accuracy_m, speed_kmh, heading, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, order_id, driver_id, lat, lon, accuracy_m, speed_kmh, heading, recorded_at
	`

	var pingDB PingDB
	err := r.querier.QueryRow(
		ctx,
		query,
		pingOrderID(ping),
		ping.DriverID,
		ping.Lat,
		ping.Lon,
		ping.AccuracyM,
		ping.SpeedKmh,
		ping.Heading,
		ping.RecordedAt,
	).Scan(
		&pingDB.ID,
		&pingDB.OrderID,
		&pingDB.DriverID,
		&pingDB.Lat,
		&pingDB.Lon,
		&pingDB.AccuracyM,
		&pingDB.SpeedKmh,
		&pingDB.Heading,
		&pingDB.RecordedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository insert ping error: %w", err)
	}

	return ToPingDomain(&pingDB), nil
}

func (r *Repository) GetLastPing(ctx context.Context, orderID int64) (*entities.LocationPing, error) {
	query := `
		SELECT id, order_id, driver_id, lat, lon, accuracy_m, speed_kmh, heading, recorded_at
		FROM location_pings
		WHERE order_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1
	`

	var pingDB PingDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&pingDB.ID,
			&pingDB.OrderID,
			&pingDB.DriverID,
			&pingDB.Lat,
			&pingDB.Lon,
			&pingDB.AccuracyM,
			&pingDB.SpeedKmh,
			&pingDB.Heading,
			&pingDB.RecordedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracking.ErrLocationUnknown
		}
		return nil, fmt.Errorf("unexpected tracking repository get last ping error: %w", err)
	}

	return ToPingDomain(&pingDB), nil
}

func (r *Repository) GetOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	query := `
		SELECT id, number, load_id, bid_id, creator_id, driver_id, amount,
			status, payout_done, expires_at, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order entities.Order
	var amount int64
	var status string
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&order.ID,
			&order.Number,
			&order.LoadID,
			&order.BidID,
			&order.CreatorID,
			&order.DriverID,
			&amount,
			&status,
			&order.PayoutDone,
			&order.ExpiresAt,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracking.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected tracking repository get order error: %w", err)
	}

	order.Amount = entities.Money(amount)
	order.Status = entities.OrderStatusType(status)
	return &order, nil
}
