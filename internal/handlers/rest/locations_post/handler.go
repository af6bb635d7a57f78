package locations_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/internal/pkg/middlewares/actor"
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
	if err != nil || orderID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var pingDTO dto.LocationPingRequest
	err = json.NewDecoder(r.Body).Decode(&pingDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	recordedAt := pingDTO.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}
	ping := entities.LocationPing{
		OrderID:    orderID,
		DriverID:   actorID,
		Lat:        pingDTO.Lat,
		Lon:        pingDTO.Lon,
		AccuracyM:  pingDTO.AccuracyM,
		SpeedKmh:   pingDTO.SpeedKmh,
		Heading:    pingDTO.Heading,
		RecordedAt: recordedAt,
	}

	snapshot, err := h.service.IngestPing(r.Context(), actorID, ping)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidOrderID),
			errors.Is(err, tracking.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tracking.ErrOrderNotFound),
			errors.Is(err, tracking.ErrRouteNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, tracking.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, tracking.ErrOrderNotActive):
			w.WriteHeader(http.StatusConflict)
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
