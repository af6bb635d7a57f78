package wshub

import (
	"sync"

	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/pkg/logger"
	"github.com/gorilla/websocket"
)

// session одно WebSocket-подключение подписчика.
// Мьютекс сериализует записи: gorilla/websocket не допускает
// конкурентных вызовов WriteJSON на одном соединении.
type session struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *session) send(snapshot entities.TrackingSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(ToSnapshotDTO(snapshot))
}

// ToSnapshotDTO представление снапшота для отправки в сокет, то же,
// что отдает REST-эндпоинт трекинга.
func ToSnapshotDTO(snapshot entities.TrackingSnapshot) dto.TrackingSnapshot {
	return dto.TrackingSnapshot{
		OrderID: snapshot.OrderID,
		Status:  snapshot.Status.String(),
		LastPoint: dto.RoutePoint{
			Lat: snapshot.LastPoint.Lat,
			Lon: snapshot.LastPoint.Lon,
		},
		ProgressKm:      snapshot.ProgressKm,
		TotalKm:         snapshot.TotalKm,
		ProgressPercent: snapshot.ProgressPercent,
		ETA:             snapshot.ETA,
		UpdatedAt:       snapshot.UpdatedAt,
	}
}

// Hub реестр подписчиков трекинга, сгруппированных по заказу.
type Hub struct {
	log logger.Logger

	mu       sync.RWMutex
	sessions map[int64]map[*session]struct{}
}

func New(log logger.Logger) *Hub {
	return &Hub{
		log:      log,
		sessions: make(map[int64]map[*session]struct{}),
	}
}

// Subscribe регистрирует соединение как подписчика заказа и возвращает
// функцию отписки. Соединением после отписки владеет вызывающий.
func (h *Hub) Subscribe(orderID int64, conn *websocket.Conn) func() {
	s := &session{conn: conn}

	h.mu.Lock()
	subs, ok := h.sessions[orderID]
	if !ok {
		subs = make(map[*session]struct{})
		h.sessions[orderID] = subs
	}
	subs[s] = struct{}{}
	h.mu.Unlock()

	h.log.Debug("tracking subscriber registered",
		logger.NewField("order_id", orderID),
	)

	return func() {
		h.mu.Lock()
		if subs, ok := h.sessions[orderID]; ok {
			delete(subs, s)
			if len(subs) == 0 {
				delete(h.sessions, orderID)
			}
		}
		h.mu.Unlock()
	}
}

// Broadcast рассылает снапшот всем подписчикам заказа. Ошибка записи
// отключает только сломанное соединение, остальные получают снапшот.
func (h *Hub) Broadcast(orderID int64, snapshot entities.TrackingSnapshot) {
	h.mu.RLock()
	subs := make([]*session, 0, len(h.sessions[orderID]))
	for s := range h.sessions[orderID] {
		subs = append(subs, s)
	}
	h.mu.RUnlock()

	for _, s := range subs {
		if err := s.send(snapshot); err != nil {
			h.log.Warn("failed to send tracking snapshot",
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			)
			h.drop(orderID, s)
		}
	}
}

// SubscriberCount количество активных подписчиков заказа.
func (h *Hub) SubscriberCount(orderID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[orderID])
}

func (h *Hub) drop(orderID int64, s *session) {
	h.mu.Lock()
	if subs, ok := h.sessions[orderID]; ok {
		delete(subs, s)
		if len(subs) == 0 {
			delete(h.sessions, orderID)
		}
	}
	h.mu.Unlock()

	_ = s.conn.Close()
}
