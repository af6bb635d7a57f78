package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/generated/dto"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

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
