package order_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/gateway/http/profile"
	"freight/internal/generated/dto"
	"freight/internal/pkg/metrics"
	"freight/internal/pkg/middlewares/actor"
	"freight/internal/service/order"
	"freight/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.Complete(r.Context(), actorID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, profile.ErrActorNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, order.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrOrderTerminal),
			errors.Is(err, order.ErrCompletionNotInTransit):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	metrics.PayoutsDistributedTotal.Inc()

	response := dto.Order{
		ID:         orderEntity.ID,
		Number:     orderEntity.Number,
		LoadID:     orderEntity.LoadID,
		BidID:      orderEntity.BidID,
		CreatorID:  orderEntity.CreatorID,
		DriverID:   orderEntity.DriverID,
		Amount:     int64(orderEntity.Amount),
		Status:     orderEntity.Status.String(),
		PayoutDone: orderEntity.PayoutDone,
		ExpiresAt:  orderEntity.ExpiresAt,
		CreatedAt:  orderEntity.CreatedAt,
		UpdatedAt:  orderEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
