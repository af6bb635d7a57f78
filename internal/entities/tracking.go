package entities

import "time"

// LocationPing сэмпл телеметрии водителя. OrderID равен нулю для
// пинга вне заказа: такой сэмпл сохраняется, но прогресс маршрута не
// пересчитывает. Точность, скорость и курс передаются приложением не
// всегда.
type LocationPing struct {
	ID         int64
	OrderID    int64
	DriverID   int64
	Lat        float64
	Lon        float64
	AccuracyM  *float64
	SpeedKmh   *float64
	Heading    *float64
	RecordedAt time.Time
}

type RoutePoint struct {
	Lat float64
	Lon float64
}

// RoutePlan построенный маршрут между двумя точками.
type RoutePlan struct {
	DistanceKm float64
	Polyline   []RoutePoint
}

// RouteTracking состояние отслеживания заказа: плановый маршрут
// и накопленный прогресс по нему.
type RouteTracking struct {
	OrderID     int64
	Polyline    []RoutePoint
	TotalKm     float64
	ProgressKm  float64
	LastLat     float64
	LastLon     float64
	LastPingAt  time.Time
	AvgSpeedKmh float64
	UpdatedAt   time.Time
}

// ProgressPercent доля пройденного маршрута, 0..100.
func (t RouteTracking) ProgressPercent() float64 {
	if t.TotalKm <= 0 {
		return 0
	}
	p := t.ProgressKm / t.TotalKm * 100
	if p > 100 {
		return 100
	}
	return p
}

// TrackingSnapshot срез прогресса заказа для выдачи клиентам.
type TrackingSnapshot struct {
	OrderID         int64
	Status          OrderStatusType
	LastPoint       RoutePoint
	ProgressKm      float64
	TotalKm         float64
	ProgressPercent float64
	ETA             *time.Time
	UpdatedAt       time.Time
}
