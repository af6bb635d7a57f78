package loads_nearby_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/internal/pkg/middlewares/actor"
	"freight/internal/service/match"
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

	query := r.URL.Query()
	lat, err := strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	radiusKm, err := strconv.ParseFloat(query.Get("radius_km"), 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	matchedLoads, err := h.service.NearbyLoads(r.Context(), actorID, lat, lon, radiusKm)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrInvalidCoordinates),
			errors.Is(err, match.ErrInvalidRadius):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, match.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toMatchedLoadsDTO(matchedLoads)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toMatchedLoadsDTO(matched []entities.MatchedLoad) dto.MatchedLoadsResponse {
	loads := make([]dto.MatchedLoad, 0, len(matched))
	for _, m := range matched {
		vehicleTypes := make([]string, 0, len(m.Load.VehicleTypes))
		for _, v := range m.Load.VehicleTypes {
			vehicleTypes = append(vehicleTypes, v.String())
		}

		loadDTO := dto.Load{
			ID:             m.Load.ID,
			CreatorID:      m.Load.CreatorID,
			OriginLat:      m.Load.OriginLat,
			OriginLon:      m.Load.OriginLon,
			DestinationLat: m.Load.DestinationLat,
			DestinationLon: m.Load.DestinationLon,
			DistanceKm:     m.Load.DistanceKm,
			CargoType:      m.Load.CargoType,
			WeightKg:       m.Load.WeightKg,
			VehicleTypes:   vehicleTypes,
			Price:          int64(m.Load.Price),
			Status:         m.Load.Status.String(),
			AcceptedBidID:  m.Load.AcceptedBidID,
			CreatedAt:      m.Load.CreatedAt,
			UpdatedAt:      m.Load.UpdatedAt,
		}
		if m.Load.LowestBidAmount != nil {
			lowest := int64(*m.Load.LowestBidAmount)
			loadDTO.LowestBidAmount = &lowest
		}

		loads = append(loads, dto.MatchedLoad{
			Load:             loadDTO,
			OriginDistanceKm: m.OriginDistanceKm,
			DeviationKm:      m.DeviationKm,
		})
	}
	return dto.MatchedLoadsResponse{Loads: loads}
}
