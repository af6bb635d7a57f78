package order_track_ws_get

import (
	"errors"
	"net/http"
	"strconv"

	"freight/internal/pkg/metrics"
	"freight/internal/pkg/wshub"
	"freight/internal/service/tracking"
	"freight/pkg/logger"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

type Handler struct {
	log      handlerLogger
	service  Service
	hub      Hub
	upgrader websocket.Upgrader
}

func New(log handlerLogger, service Service, hub Hub) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Авторизация на API-шлюзе, origin не проверяем.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	snapshot, err := h.service.TrackOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tracking.ErrOrderNotFound),
			errors.Is(err, tracking.ErrRouteNotFound),
			errors.Is(err, tracking.ErrLocationUnknown):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// текущее состояние сразу после подключения, дальше пуши из хаба
	if err := conn.WriteJSON(wshub.ToSnapshotDTO(*snapshot)); err != nil {
		return
	}

	unsubscribe := h.hub.Subscribe(orderID, conn)
	defer unsubscribe()

	metrics.TrackingSubscribers.Inc()
	defer metrics.TrackingSubscribers.Dec()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
