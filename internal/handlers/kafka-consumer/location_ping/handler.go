package location_ping

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"freight/internal/entities"
	"freight/internal/pkg/metrics"
	trackingservice "freight/internal/service/tracking"
	"freight/pkg/logger"
	"github.com/IBM/sarama"
)

// pingEvent сообщение телеметрии из мобильного приложения водителя.
// order_id опционален: без него пинг чисто телеметрический.
type pingEvent struct {
	OrderID    int64     `json:"order_id"`
	DriverID   int64     `json:"driver_id"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	AccuracyM  *float64  `json:"accuracy_m"`
	SpeedKmh   *float64  `json:"speed_kmh"`
	Heading    *float64  `json:"heading"`
	RecordedAt time.Time `json:"recorded_at"`
}

type Handler struct {
	trackingService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, trackingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		trackingService:          trackingService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("location.ping: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("location.ping: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event pingEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("location.ping handler received bad message")
		metrics.LocationPingsTotal.WithLabelValues("bad_message").Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("driver", event.DriverID),
		logger.NewField("offset", message.Offset),
	)

	ping := entities.LocationPing{
		OrderID:    event.OrderID,
		DriverID:   event.DriverID,
		Lat:        event.Lat,
		Lon:        event.Lon,
		AccuracyM:  event.AccuracyM,
		SpeedKmh:   event.SpeedKmh,
		Heading:    event.Heading,
		RecordedAt: event.RecordedAt,
	}

	_, err = h.trackingService.IngestPing(ctx, event.DriverID, ping)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("location.ping handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, trackingservice.ErrOrderNotActive):
			// пинги после завершения заказа нормальны, приложение
			// могло не успеть остановить отправку
			msgLog.Info("location.ping for inactive order skipped")

		case errors.Is(err, trackingservice.ErrForbidden):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("location.ping from driver not assigned to order")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("location.ping handler failed to process ping")
		}
		metrics.LocationPingsTotal.WithLabelValues("skipped").Inc()
		sess.MarkMessage(message, "")
		return false
	}

	metrics.LocationPingsTotal.WithLabelValues("processed").Inc()
	msgLog.Info("location.ping: processed")

	sess.MarkMessage(message, "")
	return false
}
