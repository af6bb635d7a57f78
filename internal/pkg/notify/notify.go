// Package notify диспетчер уведомлений: публикует доменные события в
// Kafka. Доставка best-effort, бизнес-операции от ошибок публикации не
// зависят.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"freight/internal/entities"
)

const (
	EventLoadPosted         = "load_posted"
	EventBidPlaced          = "bid_placed"
	EventBidAccepted        = "bid_accepted"
	EventBidRejected        = "bid_rejected"
	EventPaymentRequested   = "payment_requested"
	EventOrderStatusChanged = "order_status_changed"
	EventOrderExpired       = "order_expired"
	EventPayoutDistributed  = "payout_distributed"
	EventLocationUpdate     = "location_update"
)

// Event конверт события в топике.
type Event struct {
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type Dispatcher struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Dispatcher {
	return &Dispatcher{
		producer: producer,
		topic:    topic,
	}
}

func (d *Dispatcher) LoadPosted(_ context.Context, load entities.Load) error {
	return d.publish(EventLoadPosted, loadKey(load.ID), map[string]interface{}{
		"load_id":    load.ID,
		"creator_id": load.CreatorID,
		"price":      int64(load.Price),
	})
}

func (d *Dispatcher) BidPlaced(_ context.Context, bid entities.Bid) error {
	return d.publish(EventBidPlaced, loadKey(bid.LoadID), map[string]interface{}{
		"bid_id":    bid.ID,
		"load_id":   bid.LoadID,
		"driver_id": bid.DriverID,
		"amount":    int64(bid.Amount),
	})
}

func (d *Dispatcher) BidAccepted(_ context.Context, bid entities.Bid, order entities.Order) error {
	return d.publish(EventBidAccepted, orderKey(order.ID), map[string]interface{}{
		"bid_id":       bid.ID,
		"load_id":      bid.LoadID,
		"driver_id":    bid.DriverID,
		"order_id":     order.ID,
		"order_number": order.Number,
		"expires_at":   order.ExpiresAt,
	})
}

func (d *Dispatcher) BidRejected(_ context.Context, bid entities.Bid) error {
	return d.publish(EventBidRejected, loadKey(bid.LoadID), map[string]interface{}{
		"bid_id":    bid.ID,
		"load_id":   bid.LoadID,
		"driver_id": bid.DriverID,
	})
}

func (d *Dispatcher) PaymentRequested(_ context.Context, order entities.Order) error {
	return d.publish(EventPaymentRequested, orderKey(order.ID), map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.Number,
		"creator_id":   order.CreatorID,
		"amount":       int64(order.Amount),
	})
}

func (d *Dispatcher) OrderStatusChanged(_ context.Context, order entities.Order) error {
	return d.publish(EventOrderStatusChanged, orderKey(order.ID), map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.Number,
		"status":       order.Status.String(),
	})
}

func (d *Dispatcher) OrderExpired(_ context.Context, expired entities.ExpiredOrder) error {
	return d.publish(EventOrderExpired, orderKey(expired.OrderID), map[string]interface{}{
		"order_id":  expired.OrderID,
		"load_id":   expired.LoadID,
		"driver_id": expired.DriverID,
	})
}

func (d *Dispatcher) PayoutDistributed(_ context.Context, order entities.Order, credits []entities.CommissionCredit) error {
	type creditPayload struct {
		UserID int64 `json:"user_id"`
		Level  int   `json:"level"`
		Amount int64 `json:"amount"`
	}

	payload := make([]creditPayload, 0, len(credits))
	for _, credit := range credits {
		payload = append(payload, creditPayload{
			UserID: credit.UserID,
			Level:  credit.Level,
			Amount: int64(credit.Amount),
		})
	}

	return d.publish(EventPayoutDistributed, orderKey(order.ID), map[string]interface{}{
		"order_id": order.ID,
		"amount":   int64(order.Amount),
		"credits":  payload,
	})
}

func (d *Dispatcher) LocationUpdate(_ context.Context, snapshot entities.TrackingSnapshot) error {
	return d.publish(EventLocationUpdate, orderKey(snapshot.OrderID), map[string]interface{}{
		"order_id":         snapshot.OrderID,
		"lat":              snapshot.LastPoint.Lat,
		"lon":              snapshot.LastPoint.Lon,
		"progress_percent": snapshot.ProgressPercent,
	})
}

func (d *Dispatcher) publish(eventType, key string, payload interface{}) error {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", eventType, err)
	}

	value, err := json.Marshal(Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    rawPayload,
	})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	_, _, err = d.producer.SendMessage(&sarama.ProducerMessage{
		Topic: d.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}

	return nil
}

func loadKey(loadID int64) string {
	return "load-" + strconv.FormatInt(loadID, 10)
}

func orderKey(orderID int64) string {
	return "order-" + strconv.FormatInt(orderID, 10)
}
