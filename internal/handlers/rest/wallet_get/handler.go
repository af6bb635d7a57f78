package wallet_get

import (
	"encoding/json"
	"errors"
	"net/http"

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

	walletEntity, transactions, err := h.service.GetWallet(r.Context(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidOwner):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, wallet.ErrWalletNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	transactionDTOs := make([]dto.WalletTransaction, 0, len(transactions))
	for _, t := range transactions {
		transactionDTOs = append(transactionDTOs, dto.WalletTransaction{
			ID:        t.ID,
			OrderID:   t.OrderID,
			Type:      t.Type.String(),
			Level:     t.Level,
			Amount:    int64(t.Amount),
			CreatedAt: t.CreatedAt,
		})
	}

	response := dto.Wallet{
		ID:             walletEntity.ID,
		OwnerID:        walletEntity.OwnerID,
		Balance:        int64(walletEntity.Balance),
		TotalEarned:    int64(walletEntity.TotalEarned),
		TotalWithdrawn: int64(walletEntity.TotalWithdrawn),
		Transactions:   transactionDTOs,
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
