package load_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/entities"
	"freight/internal/gateway/http/profile"
	"freight/internal/generated/dto"
	"freight/internal/pkg/middlewares/actor"
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
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var loadUpdateDTO dto.LoadUpdate
	err = json.NewDecoder(r.Body).Decode(&loadUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	loadModifyEntity := entities.LoadModify{
		ID:             &id,
		OriginLat:      loadUpdateDTO.OriginLat,
		OriginLon:      loadUpdateDTO.OriginLon,
		DestinationLat: loadUpdateDTO.DestinationLat,
		DestinationLon: loadUpdateDTO.DestinationLon,
		CargoType:      loadUpdateDTO.CargoType,
		WeightKg:       loadUpdateDTO.WeightKg,
	}
	if loadUpdateDTO.Price != nil {
		price := entities.Money(*loadUpdateDTO.Price)
		loadModifyEntity.Price = &price
	}
	if loadUpdateDTO.VehicleTypes != nil {
		vehicleTypes := make([]entities.VehicleType, 0, len(*loadUpdateDTO.VehicleTypes))
		for _, v := range *loadUpdateDTO.VehicleTypes {
			vehicleTypes = append(vehicleTypes, entities.VehicleType(v))
		}
		loadModifyEntity.VehicleTypes = &vehicleTypes
	}

	updated, err := h.service.UpdateLoad(r.Context(), actorID, loadModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, load.ErrInvalidLoadID),
			errors.Is(err, load.ErrInvalidCoordinates),
			errors.Is(err, load.ErrInvalidWeight),
			errors.Is(err, load.ErrInvalidPrice),
			errors.Is(err, load.ErrInvalidVehicleType):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, load.ErrLoadNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, profile.ErrActorNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, load.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, load.ErrLoadNotEditable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toLoadDTO(*updated)

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
