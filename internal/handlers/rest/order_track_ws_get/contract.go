//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_track_ws_get_test
package order_track_ws_get

import (
	"context"

	"freight/internal/entities"
	"freight/pkg/logger"
	"github.com/gorilla/websocket"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	TrackOrder(ctx context.Context, orderID int64) (*entities.TrackingSnapshot, error)
}

type Hub interface {
	Subscribe(orderID int64, conn *websocket.Conn) func()
}
