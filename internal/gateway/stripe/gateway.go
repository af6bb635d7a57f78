// Package stripe шлюз платежного провайдера: холд средств при создании
// заказа, списание при завершении, отмена при истечении или провале.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"time"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"freight/internal/entities"
	"freight/internal/gateway"
	retrierconfig "freight/pkg/retrier"
	"freight/pkg/retrier/backoff_adapter"
)

const serviceName = "stripe"

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type PaymentGateway struct {
	retrier  retrier
	currency string
}

func New(apiKey, currency string) *PaymentGateway {
	stripe.Key = apiKey

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &PaymentGateway{
		retrier:  backoff_adapter.New(retryConfig),
		currency: currency,
	}
}

// Authorize создает PaymentIntent с ручным списанием: средства
// замораживаются до завершения заказа.
func (g *PaymentGateway) Authorize(ctx context.Context, amount entities.Money, orderNumber string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(int64(amount)),
		Currency:      stripe.String(g.currency),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		Description:   stripe.String("freight order " + orderNumber),
	}

	var providerRef string
	err := g.executeWithMetrics(ctx, "Authorize", func(ctx context.Context) error {
		pi, err := paymentintent.New(params)
		if err != nil {
			return err
		}
		providerRef = pi.ID
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("gateway stripe, authorize %s: %w", orderNumber, err)
	}

	return providerRef, nil
}

func (g *PaymentGateway) Capture(ctx context.Context, providerRef string) error {
	err := g.executeWithMetrics(ctx, "Capture", func(ctx context.Context) error {
		_, err := paymentintent.Capture(providerRef, nil)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway stripe, capture %s: %w", providerRef, err)
	}
	return nil
}

func (g *PaymentGateway) Cancel(ctx context.Context, providerRef string) error {
	err := g.executeWithMetrics(ctx, "Cancel", func(ctx context.Context) error {
		_, err := paymentintent.Cancel(providerRef, nil)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway stripe, cancel %s: %w", providerRef, err)
	}
	return nil
}

func isRetryable(err error) bool {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.HTTPStatusCode == 429 || stripeErr.HTTPStatusCode >= 500
	}
	return false
}

func (g *PaymentGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
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
