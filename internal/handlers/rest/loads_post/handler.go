package loads_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight/internal/entities"
	"freight/internal/gateway/http/profile"
	"freight/internal/generated/dto"
	"freight/internal/pkg/middlewares/actor"
	"freight/internal/service/load"
	"freight/pkg/logger"
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

	var loadCreateDTO dto.LoadCreate
	err := json.NewDecoder(r.Body).Decode(&loadCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	price := entities.Money(loadCreateDTO.Price)
	vehicleTypes := make([]entities.VehicleType, 0, len(loadCreateDTO.VehicleTypes))
	for _, v := range loadCreateDTO.VehicleTypes {
		vehicleTypes = append(vehicleTypes, entities.VehicleType(v))
	}
	loadModifyEntity := entities.LoadModify{
		OriginLat:      &loadCreateDTO.OriginLat,
		OriginLon:      &loadCreateDTO.OriginLon,
		DestinationLat: &loadCreateDTO.DestinationLat,
		DestinationLon: &loadCreateDTO.DestinationLon,
		CargoType:      &loadCreateDTO.CargoType,
		WeightKg:       &loadCreateDTO.WeightKg,
		VehicleTypes:   &vehicleTypes,
		Price:          &price,
	}

	created, err := h.service.CreateLoad(r.Context(), actorID, loadModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, load.ErrMissingRequiredFields),
			errors.Is(err, load.ErrInvalidCoordinates),
			errors.Is(err, load.ErrInvalidWeight),
			errors.Is(err, load.ErrInvalidPrice),
			errors.Is(err, load.ErrInvalidVehicleType):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, profile.ErrActorNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, load.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.LoadCreateResponse{
		ID: created.ID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
