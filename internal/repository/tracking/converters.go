package tracking

import (
	"encoding/json"
	"fmt"

	"freight/internal/entities"
)

func ToDomain(t *RouteTrackingDB) (*entities.RouteTracking, error) {
	if t == nil {
		return nil, nil
	}

	var points []polylinePoint
	if len(t.Polyline) > 0 {
		if err := json.Unmarshal(t.Polyline, &points); err != nil {
			return nil, fmt.Errorf("decode polyline: %w", err)
		}
	}

	polyline := make([]entities.RoutePoint, 0, len(points))
	for _, p := range points {
		polyline = append(polyline, entities.RoutePoint{Lat: p.Lat, Lon: p.Lon})
	}

	route := &entities.RouteTracking{
		OrderID:     t.OrderID,
		Polyline:    polyline,
		TotalKm:     t.TotalKm,
		ProgressKm:  t.ProgressKm,
		LastLat:     t.LastLat,
		LastLon:     t.LastLon,
		AvgSpeedKmh: t.AvgSpeedKmh,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.LastPingAt != nil {
		route.LastPingAt = *t.LastPingAt
	}

	return route, nil
}

func EncodePolyline(polyline []entities.RoutePoint) ([]byte, error) {
	points := make([]polylinePoint, 0, len(polyline))
	for _, p := range polyline {
		points = append(points, polylinePoint{Lat: p.Lat, Lon: p.Lon})
	}

	encoded, err := json.Marshal(points)
	if err != nil {
		return nil, fmt.Errorf("encode polyline: %w", err)
	}
	return encoded, nil
}

func ToPingDomain(p *PingDB) *entities.LocationPing {
	if p == nil {
		return nil
	}
	ping := &entities.LocationPing{
		ID:         p.ID,
		DriverID:   p.DriverID,
		Lat:        p.Lat,
		Lon:        p.Lon,
		AccuracyM:  p.AccuracyM,
		SpeedKmh:   p.SpeedKmh,
		Heading:    p.Heading,
		RecordedAt: p.RecordedAt,
	}
	if p.OrderID != nil {
		ping.OrderID = *p.OrderID
	}
	return ping
}

// pingOrderID внезаказный пинг хранится с NULL вместо нулевого order_id.
func pingOrderID(ping entities.LocationPing) *int64 {
	if ping.OrderID <= 0 {
		return nil
	}
	orderID := ping.OrderID
	return &orderID
}
