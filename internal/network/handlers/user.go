package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/services"
)

// RegisterUserHandler - регистрация нового пользователя
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if err := decodeJSON(r, &user); err != nil {
			logger.Error("Failed to decode request", err)
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		identity, err := i.RegisterUser(r.Context(), user)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyCredentials):
				WriteError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrUserAlreadyExists):
				logger.Warn("Error register user", user.Login)
				WriteError(w, http.StatusConflict, "login already exist")
			default:
				WriteServerError(w, "Error register user", err)
			}
			return
		}

		token, err := i.GenerateJWT(*identity)
		if err != nil {
			WriteServerError(w, "Failed to generate token", err)
			return
		}
		logger.Info("User registered and authenticated", user.Login)
		w.Header().Set("Authorization", "Bearer "+token)
		WriteSuccess(w, http.StatusOK, Response{"userId": identity.UserID})
	})
}

// AuthenticateUserHandle - аутентификация пользователя
func AuthenticateUserHandle(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if err := decodeJSON(r, &user); err != nil {
			logger.Error("Failed to decode request", err)
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		identity, err := i.AuthenticateUser(r.Context(), user)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyCredentials):
				WriteError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrInvalidCredentials):
				logger.Warn("Authentication failed", user.Login)
				WriteError(w, http.StatusUnauthorized, "Invalid login/password")
			default:
				WriteServerError(w, "Error authenticate user", err)
			}
			return
		}

		token, err := i.GenerateJWT(*identity)
		if err != nil {
			WriteServerError(w, "Failed to generate token", err)
			return
		}
		logger.Info("User authenticated", user.Login)
		w.Header().Set("Authorization", "Bearer "+token)
		WriteSuccess(w, http.StatusOK, Response{"userId": identity.UserID, "role": identity.Role})
	})
}
