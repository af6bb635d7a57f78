package bid_reject_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/gateway/http/profile"
	"freight/internal/generated/dto"
	"freight/internal/pkg/middlewares/actor"
	"freight/internal/service/bid"
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
	bidID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bidEntity, err := h.service.RejectBid(r.Context(), actorID, bidID)
	if err != nil {
		switch {
		case errors.Is(err, bid.ErrInvalidBidID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, bid.ErrBidNotFound),
			errors.Is(err, bid.ErrLoadNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, profile.ErrActorNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, bid.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, bid.ErrBidAlreadyDecided):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Bid{
		ID:        bidEntity.ID,
		LoadID:    bidEntity.LoadID,
		DriverID:  bidEntity.DriverID,
		Amount:    int64(bidEntity.Amount),
		Comment:   bidEntity.Comment,
		Status:    bidEntity.Status.String(),
		CreatedAt: bidEntity.CreatedAt,
		UpdatedAt: bidEntity.UpdatedAt,
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
