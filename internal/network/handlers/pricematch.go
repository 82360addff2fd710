package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/blinds-loyalty/internal/helpers"
	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/services"
)

// SubmitPriceMatchHandler - заявка на price match, токен необязателен
func SubmitPriceMatchHandler(p services.PriceMatchService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.PriceMatchRequest
		if err := decodeJSON(r, &req); err != nil {
			logger.Warn("Invalid request format:", err)
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		var userID string
		if identity, err := helpers.GetIdentity(r.Context()); err == nil {
			userID = identity.UserID
		}

		id, err := p.Submit(r.Context(), userID, req)
		if err != nil {
			var validationErr *services.ValidationError
			if errors.As(err, &validationErr) {
				WriteError(w, http.StatusBadRequest, validationErr.Message)
				return
			}
			WriteServerError(w, "Failed to submit price match request:", err)
			return
		}
		WriteSuccess(w, http.StatusCreated, Response{
			"message":   "Price match request submitted successfully",
			"requestId": id,
		})
	})
}
