package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/blinds-loyalty/internal/helpers"
	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/services"
)

// Response - конверт ответа {success, ...}
type Response map[string]any

// WriteJSON - ответ в формате JSON с кодом статуса
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode JSON response:", err)
	}
}

// WriteSuccess - успешный ответ с дополнительными полями
func WriteSuccess(w http.ResponseWriter, status int, fields Response) {
	body := Response{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	WriteJSON(w, status, body)
}

// WriteError - ответ {success: false, error}
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{"success": false, "error": message})
}

// WriteRedemptionError - отказ в погашении с причиной
func WriteRedemptionError(w http.ResponseWriter, err *services.RedemptionError) {
	WriteJSON(w, http.StatusUnprocessableEntity, Response{
		"success": false,
		"error":   err.Error(),
		"reason":  err.Reason,
	})
}

// WriteServerError - неожиданная ошибка, клиенту без подробностей
func WriteServerError(w http.ResponseWriter, message string, err error) {
	logger.Error(message, err)
	WriteError(w, http.StatusInternalServerError, "Internal Server Error")
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// requireIdentity - пользователь из токена или ответ 401
func requireIdentity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, err := helpers.GetIdentity(r.Context())
	if err != nil {
		logger.Warn("Failed to get identity:", err)
		WriteError(w, http.StatusUnauthorized, "Authentication required")
		return models.Identity{}, false
	}
	return identity, true
}
