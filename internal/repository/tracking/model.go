package tracking

import "time"

type RouteTrackingDB struct {
	OrderID     int64
	Polyline    []byte
	TotalKm     float64
	ProgressKm  float64
	LastLat     float64
	LastLon     float64
	LastPingAt  *time.Time
	AvgSpeedKmh float64
	UpdatedAt   time.Time
}

// PingDB строка location_pings. OrderID NULL у телеметрии вне заказа.
type PingDB struct {
	ID         int64
	OrderID    *int64
	DriverID   int64
	Lat        float64
	Lon        float64
	AccuracyM  *float64
	SpeedKmh   *float64
	Heading    *float64
	RecordedAt time.Time
}

// polylinePoint формат вершины маршрута в JSONB.
type polylinePoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
