package tracking

import (
	"context"
	"fmt"
	"time"

	"freight/internal/entities"
	"freight/pkg/geo"
	"freight/pkg/logger"
)

// speedSmoothing вес мгновенной скорости в сглаженной оценке.
const speedSmoothing = 0.3

type Tracking struct {
	repository Repository
	cache      LocationCache
	routing    RoutingGateway
	hub        Broadcaster
	notifier   Notifier
	txManager  TxManager
	log        logger.Logger
}

func New(
	repository Repository,
	cache LocationCache,
	routing RoutingGateway,
	hub Broadcaster,
	notifier Notifier,
	txManager TxManager,
	log logger.Logger,
) *Tracking {
	return &Tracking{
		repository: repository,
		cache:      cache,
		routing:    routing,
		hub:        hub,
		notifier:   notifier,
		txManager:  txManager,
		log:        log,
	}
}

// InitRoute строит плановый маршрут заказа. При недоступности шлюза
// маршрутизации полилиния вырождается в отрезок между точками.
func (t *Tracking) InitRoute(ctx context.Context, orderID int64, origin, destination entities.RoutePoint) error {
	plan, err := t.routing.Route(ctx, origin, destination)
	if err != nil {
		t.log.Warn("routing gateway unavailable, using straight-line route",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err.Error()),
		)
		plan = &entities.RoutePlan{
			DistanceKm: geo.DistanceKm(
				geo.Point{Lat: origin.Lat, Lon: origin.Lon},
				geo.Point{Lat: destination.Lat, Lon: destination.Lon},
			),
			Polyline: []entities.RoutePoint{origin, destination},
		}
	}

	err = t.repository.CreateRoute(ctx, entities.RouteTracking{
		OrderID:  orderID,
		Polyline: plan.Polyline,
		TotalKm:  plan.DistanceKm,
	})
	if err != nil {
		return fmt.Errorf("create route tracking: %w", err)
	}
	return nil
}

// IngestPing принимает позицию водителя, пересчитывает прогресс по
// маршруту и рассылает срез подписчикам. Прогресс не убывает: пинг,
// спроецированный позади уже достигнутой точки, прогресс не откатывает.
// Пинг без заказа (OrderID == 0) это чистая телеметрия: сэмпл
// сохраняется и обновляет кеш последней позиции, маршрут не трогается.
func (t *Tracking) IngestPing(ctx context.Context, actorID int64, ping entities.LocationPing) (*entities.TrackingSnapshot, error) {
	if ping.OrderID < 0 {
		return nil, ErrInvalidOrderID
	}
	if !isValidPoint(ping.Lat, ping.Lon) {
		return nil, ErrInvalidCoordinates
	}
	if ping.RecordedAt.IsZero() {
		ping.RecordedAt = time.Now().UTC()
	}

	if ping.OrderID == 0 {
		return nil, t.ingestTelemetry(ctx, actorID, ping)
	}

	var snapshot entities.TrackingSnapshot
	err := t.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		order, err := t.repository.GetOrder(ctx, ping.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.DriverID != actorID {
			return ErrForbidden
		}
		if order.Status.Terminal() {
			return ErrOrderNotActive
		}
		ping.DriverID = order.DriverID

		if _, err := t.repository.InsertPing(ctx, ping); err != nil {
			return fmt.Errorf("insert ping: %w", err)
		}

		route, err := t.repository.GetRouteForUpdate(ctx, ping.OrderID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		updated := advanceRoute(*route, ping)
		if err := t.repository.UpdateRoute(ctx, updated); err != nil {
			return fmt.Errorf("update route: %w", err)
		}

		snapshot = buildSnapshot(updated, order.Status, entities.RoutePoint{Lat: ping.Lat, Lon: ping.Lon}, ping.RecordedAt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = t.cache.SetLatest(ctx, entities.DriverLocation{
		DriverID:   ping.DriverID,
		Lat:        ping.Lat,
		Lon:        ping.Lon,
		RecordedAt: ping.RecordedAt,
	})
	if err != nil {
		t.log.Warn("location cache update failed",
			logger.NewField("driver_id", ping.DriverID),
			logger.NewField("error", err.Error()),
		)
	}

	t.hub.Broadcast(ping.OrderID, snapshot)

	if err := t.notifier.LocationUpdate(ctx, snapshot); err != nil {
		t.log.Warn("location update notification failed",
			logger.NewField("order_id", ping.OrderID),
			logger.NewField("error", err.Error()),
		)
	}

	return &snapshot, nil
}

// ingestTelemetry сохраняет внезаказный пинг. Снимка прогресса у такого
// пинга нет, подписчиков уведомлять не о чем.
func (t *Tracking) ingestTelemetry(ctx context.Context, actorID int64, ping entities.LocationPing) error {
	ping.DriverID = actorID

	err := t.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		if _, err := t.repository.InsertPing(ctx, ping); err != nil {
			return fmt.Errorf("insert ping: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = t.cache.SetLatest(ctx, entities.DriverLocation{
		DriverID:   ping.DriverID,
		Lat:        ping.Lat,
		Lon:        ping.Lon,
		RecordedAt: ping.RecordedAt,
	})
	if err != nil {
		t.log.Warn("location cache update failed",
			logger.NewField("driver_id", ping.DriverID),
			logger.NewField("error", err.Error()),
		)
	}
	return nil
}

// TrackOrder текущий срез прогресса заказа. Последняя позиция читается
// из кеша, при промахе — из таблицы пингов.
func (t *Tracking) TrackOrder(ctx context.Context, orderID int64) (*entities.TrackingSnapshot, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := t.repository.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	route, err := t.repository.GetRoute(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}

	lastPoint := entities.RoutePoint{Lat: route.LastLat, Lon: route.LastLon}
	lastSeen := route.LastPingAt

	location, err := t.cache.GetLatest(ctx, order.DriverID)
	if err == nil && location != nil {
		lastPoint = entities.RoutePoint{Lat: location.Lat, Lon: location.Lon}
		lastSeen = location.RecordedAt
	} else if route.LastPingAt.IsZero() {
		lastPing, pingErr := t.repository.GetLastPing(ctx, orderID)
		if pingErr != nil {
			return nil, ErrLocationUnknown
		}
		lastPoint = entities.RoutePoint{Lat: lastPing.Lat, Lon: lastPing.Lon}
		lastSeen = lastPing.RecordedAt
	}

	snapshot := buildSnapshot(*route, order.Status, lastPoint, lastSeen)
	return &snapshot, nil
}

// advanceRoute проецирует пинг на полилинию и продвигает прогресс.
func advanceRoute(route entities.RouteTracking, ping entities.LocationPing) entities.RouteTracking {
	polyline := make([]geo.Point, len(route.Polyline))
	for i, p := range route.Polyline {
		polyline[i] = geo.Point{Lat: p.Lat, Lon: p.Lon}
	}

	idx, _ := geo.NearestVertex(polyline, geo.Point{Lat: ping.Lat, Lon: ping.Lon})
	progress := geo.DistanceAlongKm(polyline, idx)
	if progress < route.ProgressKm {
		progress = route.ProgressKm
	}

	if !route.LastPingAt.IsZero() && ping.RecordedAt.After(route.LastPingAt) {
		hours := ping.RecordedAt.Sub(route.LastPingAt).Hours()
		if hours > 0 {
			instant := (progress - route.ProgressKm) / hours
			if route.AvgSpeedKmh <= 0 {
				route.AvgSpeedKmh = instant
			} else {
				route.AvgSpeedKmh = speedSmoothing*instant + (1-speedSmoothing)*route.AvgSpeedKmh
			}
		}
	}

	route.ProgressKm = progress
	route.LastLat = ping.Lat
	route.LastLon = ping.Lon
	route.LastPingAt = ping.RecordedAt
	route.UpdatedAt = time.Now().UTC()
	return route
}

func buildSnapshot(route entities.RouteTracking, status entities.OrderStatusType, lastPoint entities.RoutePoint, updatedAt time.Time) entities.TrackingSnapshot {
	snapshot := entities.TrackingSnapshot{
		OrderID:         route.OrderID,
		Status:          status,
		LastPoint:       lastPoint,
		ProgressKm:      route.ProgressKm,
		TotalKm:         route.TotalKm,
		ProgressPercent: route.ProgressPercent(),
		UpdatedAt:       updatedAt,
	}

	remaining := route.TotalKm - route.ProgressKm
	if remaining > 0 && route.AvgSpeedKmh > 0 && !status.Terminal() {
		eta := updatedAt.Add(time.Duration(remaining / route.AvgSpeedKmh * float64(time.Hour)))
		snapshot.ETA = &eta
	}
	return snapshot
}

func isValidPoint(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
