package order_expiry

import (
	"context"
	"time"

	"freight/internal/pkg/metrics"
	"freight/pkg/logger"
)

type Service interface {
	ExpireOverdue(ctx context.Context) (int64, error)
	ResyncExpiryTimers(ctx context.Context) error
}

// OrderExpiry фоновая развертка просроченных заказов. Источник истины
// для истечения: in-memory таймеры лишь ускоряют реакцию, а развертка
// добирает все, что таймеры пропустили (рестарт, сбой процесса).
type OrderExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration

	resynced bool
}

func NewOrderExpiry(log logger.Logger, service Service, interval time.Duration) *OrderExpiry {
	return &OrderExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderExpiry) TTL() time.Duration {
	return o.interval
}

func (o *OrderExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	// первый прогон после старта восстанавливает таймеры живых заказов
	if !o.resynced {
		if err := o.service.ResyncExpiryTimers(ctxWithTimeout); err != nil {
			return err
		}
		o.resynced = true
	}

	rowsAffected, err := o.service.ExpireOverdue(ctxWithTimeout)

	if rowsAffected > 0 {
		metrics.OrdersExpiredTotal.WithLabelValues("sweep").Add(float64(rowsAffected))
		o.log.With(
			logger.NewField("expired_orders", rowsAffected),
		).Info("order expiry sweep")
	}

	return err
}

func (o *OrderExpiry) Info() string {
	return "order expiry sweep"
}
