// Package routing клиент OSRM-совместимого сервиса маршрутизации.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"freight/internal/entities"
	"freight/internal/gateway"
	retrierconfig "freight/pkg/retrier"
	"freight/pkg/retrier/backoff_adapter"
)

const serviceName = "routing-service"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var ErrNoRoute = errors.New("no route between points")

type retryableError struct {
	err error
}

func (e retryableError) Error() string { return e.err.Error() }
func (e retryableError) Unwrap() error { return e.err }

type RoutingGateway struct {
	client  httpClient
	retrier retrier
	baseURL string
}

func New(client httpClient, baseURL string) *RoutingGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &RoutingGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
	}
}

// osrmResponse ответ /route/v1 с геометрией в GeoJSON: координаты идут
// парами [lon, lat], дистанция в метрах.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

func (g *RoutingGateway) Route(ctx context.Context, origin, destination entities.RoutePoint) (*entities.RoutePlan, error) {
	var payload osrmResponse

	err := g.executeWithMetrics(ctx, "Route", func(ctx context.Context) error {
		url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
			g.baseURL, origin.Lon, origin.Lat, destination.Lon, destination.Lat)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := g.client.Do(req)
		if err != nil {
			return retryableError{err: err}
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			return json.NewDecoder(resp.Body).Decode(&payload)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return retryableError{err: fmt.Errorf("routing service status %d", resp.StatusCode)}
		default:
			return fmt.Errorf("routing service status %d", resp.StatusCode)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("gateway routing, route: %w", err)
	}

	if payload.Code != "Ok" || len(payload.Routes) == 0 {
		return nil, ErrNoRoute
	}

	route := payload.Routes[0]
	polyline := make([]entities.RoutePoint, 0, len(route.Geometry.Coordinates))
	for _, pair := range route.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		polyline = append(polyline, entities.RoutePoint{Lat: pair[1], Lon: pair[0]})
	}

	return &entities.RoutePlan{
		DistanceKm: route.Distance / 1000,
		Polyline:   polyline,
	}, nil
}

func isRetryable(err error) bool {
	var re retryableError
	return errors.As(err, &re)
}

func (g *RoutingGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := "ok"
	if err != nil {
		code = "error"
	}
	gateway.RequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		gateway.RetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}
