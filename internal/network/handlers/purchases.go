package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/services"
	"github.com/denmor86/blinds-loyalty/internal/storage"
	"github.com/denmor86/blinds-loyalty/internal/validators"
)

// RegisterPurchaseHandler - регистрация заказа для начисления баллов
func RegisterPurchaseHandler(p services.PurchaseService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		var req models.PurchaseRequest
		if err := decodeJSON(r, &req); err != nil {
			logger.Warn("Invalid request format:", err)
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		if !validators.CheckOrderNumber(req.OrderNumber) {
			logger.Warn("Invalid order number format", req.OrderNumber)
			WriteError(w, http.StatusUnprocessableEntity, "Invalid order number format")
			return
		}

		err := p.AddPurchase(r.Context(), identity.UserID, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPurchaseAlreadyUploaded):
				WriteSuccess(w, http.StatusOK, Response{"message": "Purchase already registered"})
			case errors.Is(err, services.ErrPurchaseUploadedByAnother):
				WriteError(w, http.StatusConflict, "Purchase already registered by another user")
			case errors.Is(err, services.ErrInvalidPurchaseAmount):
				WriteError(w, http.StatusBadRequest, "Purchase amount must be positive")
			case errors.Is(err, storage.ErrAccountNotFound):
				WriteError(w, http.StatusNotFound, "User not enrolled in loyalty program")
			default:
				WriteServerError(w, "Failed to register purchase:", err)
			}
			return
		}
		WriteSuccess(w, http.StatusAccepted, Response{"message": "Purchase accepted for processing"})
	})
}
