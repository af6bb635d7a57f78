package load_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/internal/service/load"
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

	loadEntity, err := h.service.GetLoad(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, load.ErrLoadNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, load.ErrInvalidLoadID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toLoadDTO(*loadEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toLoadDTO(loadEntity entities.Load) dto.Load {
	vehicleTypes := make([]string, 0, len(loadEntity.VehicleTypes))
	for _, v := range loadEntity.VehicleTypes {
		vehicleTypes = append(vehicleTypes, v.String())
	}

	loadDTO := dto.Load{
		ID:             loadEntity.ID,
		CreatorID:      loadEntity.CreatorID,
		OriginLat:      loadEntity.OriginLat,
		OriginLon:      loadEntity.OriginLon,
		DestinationLat: loadEntity.DestinationLat,
		DestinationLon: loadEntity.DestinationLon,
		DistanceKm:     loadEntity.DistanceKm,
		CargoType:      loadEntity.CargoType,
		WeightKg:       loadEntity.WeightKg,
		VehicleTypes:   vehicleTypes,
		Price:          int64(loadEntity.Price),
		Status:         loadEntity.Status.String(),
		AcceptedBidID:  loadEntity.AcceptedBidID,
		CreatedAt:      loadEntity.CreatedAt,
		UpdatedAt:      loadEntity.UpdatedAt,
	}
	if loadEntity.LowestBidAmount != nil {
		lowest := int64(*loadEntity.LowestBidAmount)
		loadDTO.LowestBidAmount = &lowest
	}
	return loadDTO
}
