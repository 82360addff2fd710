package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/services"
	"github.com/denmor86/blinds-loyalty/internal/storage"
)

// GetTiersHandler - список уровней программы
func GetTiersHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tiers, err := l.GetTiers(r.Context())
		if err != nil {
			WriteServerError(w, "Failed to get tiers:", err)
			return
		}
		response := make([]models.TierResponse, 0, len(tiers))
		for _, t := range tiers {
			response = append(response, models.NewTierResponse(t))
		}
		WriteSuccess(w, http.StatusOK, Response{"tiers": response})
	})
}

// GetAccountHandler - аккаунт лояльности пользователя
func GetAccountHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		summary, err := l.GetAccount(r.Context(), identity.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrAccountNotFound) {
				WriteError(w, http.StatusNotFound, "User not enrolled in loyalty program")
				return
			}
			WriteServerError(w, "Failed to get loyalty account:", err)
			return
		}
		WriteSuccess(w, http.StatusOK, Response{"account": models.NewAccountResponse(*summary)})
	})
}

// EnrollHandler - вступление в программу лояльности
func EnrollHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		bonus, err := l.Enroll(r.Context(), identity.UserID)
		if err != nil {
			if errors.Is(err, services.ErrAlreadyEnrolled) {
				WriteError(w, http.StatusBadRequest, "User already enrolled in loyalty program")
				return
			}
			WriteServerError(w, "Failed to enroll user:", err)
			return
		}
		logger.Info("User enrolled", identity.Username)
		WriteSuccess(w, http.StatusCreated, Response{
			"message":     "Successfully enrolled in loyalty program",
			"bonusPoints": bonus,
		})
	})
}

// GetTransactionsHandler - журнал баллов пользователя
func GetTransactionsHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		transactions, err := l.GetTransactions(r.Context(), identity.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrAccountNotFound) {
				WriteError(w, http.StatusNotFound, "User not enrolled in loyalty program")
				return
			}
			WriteServerError(w, "Failed to get transactions:", err)
			return
		}
		response := make([]models.TransactionResponse, 0, len(transactions))
		for _, t := range transactions {
			response = append(response, models.NewTransactionResponse(t))
		}
		WriteSuccess(w, http.StatusOK, Response{"transactions": response})
	})
}
