package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"freight/internal/entities"
	"freight/internal/gateway"
	retrierconfig "freight/pkg/retrier"
	"freight/pkg/retrier/backoff_adapter"
)

const serviceName = "profile-service"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var ErrActorNotFound = errors.New("actor profile not found")

// retryableError помечает ошибки, которые имеет смысл повторить.
type retryableError struct {
	err error
}

func (e retryableError) Error() string { return e.err.Error() }
func (e retryableError) Unwrap() error { return e.err }

type ProfileGateway struct {
	client  httpClient
	retrier retrier
	baseURL string
}

func New(client httpClient, baseURL string) *ProfileGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &ProfileGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
	}
}

func (g *ProfileGateway) GetActor(ctx context.Context, actorID int64) (*entities.Actor, error) {
	var payload actorResponse

	err := g.executeWithMetrics(ctx, "GetActor", func(ctx context.Context) error {
		url := g.baseURL + "/api/v1/users/" + strconv.FormatInt(actorID, 10)
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
		case resp.StatusCode == http.StatusNotFound:
			return ErrActorNotFound
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return retryableError{err: fmt.Errorf("profile service status %d", resp.StatusCode)}
		default:
			return fmt.Errorf("profile service status %d", resp.StatusCode)
		}
	})
	if err != nil {
		if errors.Is(err, ErrActorNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, fmt.Errorf("gateway profile, get actor %d: %w", actorID, err)
	}

	return toDomain(payload)
}

func isRetryable(err error) bool {
	var re retryableError
	return errors.As(err, &re)
}

func (g *ProfileGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := resultCode(err)
	gateway.RequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		gateway.RetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func resultCode(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}
