package wallet_withdraw_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight/internal/entities"
	"freight/internal/gateway/http/profile"
	"freight/internal/generated/dto"
	"freight/internal/pkg/middlewares/actor"
	"freight/internal/service/wallet"
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

	var withdrawDTO dto.WithdrawRequest
	err := json.NewDecoder(r.Body).Decode(&withdrawDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	walletEntity, err := h.service.Withdraw(r.Context(), actorID, entities.Money(withdrawDTO.Amount))
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidAmount),
			errors.Is(err, wallet.ErrInvalidOwner):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, wallet.ErrWalletNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, profile.ErrActorNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, wallet.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, wallet.ErrInsufficientBalance):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.WithdrawResponse{
		Balance:        int64(walletEntity.Balance),
		TotalWithdrawn: int64(walletEntity.TotalWithdrawn),
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
