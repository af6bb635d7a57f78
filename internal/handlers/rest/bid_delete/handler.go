package bid_delete

import (
	"errors"
	"net/http"
	"strconv"

	"freight/internal/gateway/http/profile"
	"freight/internal/pkg/middlewares/actor"
	"freight/internal/service/bid"
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

	err = h.service.WithdrawBid(r.Context(), actorID, bidID)
	if err != nil {
		switch {
		case errors.Is(err, bid.ErrInvalidBidID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, bid.ErrBidNotFound):
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

	w.WriteHeader(http.StatusNoContent)
}
