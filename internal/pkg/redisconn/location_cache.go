package redisconn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"freight/internal/entities"
	"github.com/redis/go-redis/v9"
)

const locationKeyPrefix = "driver:location:"

// LocationCache хранит последнюю позицию водителя в Redis с TTL.
type LocationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLocationCache(client *redis.Client, ttl time.Duration) *LocationCache {
	return &LocationCache{
		client: client,
		ttl:    ttl,
	}
}

type locationValue struct {
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	RecordedAt time.Time `json:"recorded_at"`
}

func (c *LocationCache) SetLatest(ctx context.Context, location entities.DriverLocation) error {
	value, err := json.Marshal(locationValue{
		Lat:        location.Lat,
		Lon:        location.Lon,
		RecordedAt: location.RecordedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal driver location: %w", err)
	}

	key := locationKey(location.DriverID)
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set driver location in redis: %w", err)
	}

	return nil
}

func (c *LocationCache) GetLatest(ctx context.Context, driverID int64) (*entities.DriverLocation, error) {
	raw, err := c.client.Get(ctx, locationKey(driverID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get driver location from redis: %w", err)
	}

	var value locationValue
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("failed to unmarshal driver location: %w", err)
	}

	return &entities.DriverLocation{
		DriverID:   driverID,
		Lat:        value.Lat,
		Lon:        value.Lon,
		RecordedAt: value.RecordedAt,
	}, nil
}

func locationKey(driverID int64) string {
	return fmt.Sprintf("%s%d", locationKeyPrefix, driverID)
}
