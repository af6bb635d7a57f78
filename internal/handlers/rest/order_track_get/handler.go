package order_track_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/internal/service/tracking"
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

	response := toSnapshotDTO(*snapshot)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toSnapshotDTO(snapshot entities.TrackingSnapshot) dto.TrackingSnapshot {
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
