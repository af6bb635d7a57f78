package bids_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight/internal/entities"
	"freight/internal/gateway/http/profile"
	"freight/internal/generated/dto"
	"freight/internal/pkg/metrics"
	"freight/internal/pkg/middlewares/actor"
	"freight/internal/service/bid"
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

	var bidCreateDTO dto.BidCreate
	err := json.NewDecoder(r.Body).Decode(&bidCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	comment := ""
	if bidCreateDTO.Comment != nil {
		comment = *bidCreateDTO.Comment
	}

	created, err := h.service.PlaceBid(r.Context(), actorID, bidCreateDTO.LoadID, entities.Money(bidCreateDTO.Amount), comment)
	if err != nil {
		switch {
		case errors.Is(err, bid.ErrInvalidLoadID),
			errors.Is(err, bid.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, bid.ErrLoadNotFound),
			errors.Is(err, bid.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, profile.ErrActorNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, bid.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, bid.ErrLoadClosed),
			errors.Is(err, bid.ErrLoadAlreadyAssigned),
			errors.Is(err, bid.ErrDuplicateBid):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, bid.ErrInsufficientCapacity),
			errors.Is(err, bid.ErrVehicleMismatch):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	metrics.BidsPlacedTotal.Inc()

	response := dto.BidCreateResponse{
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
