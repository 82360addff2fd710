package helpers

import (
	"context"
	"errors"

	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/go-chi/jwtauth/v5"
)

var ErrNoIdentity = errors.New("undefined user identity")

// GetIdentity - извлекает пользователя из контекста JWT токена
func GetIdentity(ctx context.Context) (models.Identity, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return models.Identity{}, ErrNoIdentity
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		logger.Warn("Undefined user id from token")
		return models.Identity{}, ErrNoIdentity
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if role == "" {
		role = models.RoleCustomer
	}
	return models.Identity{UserID: userID, Username: username, Role: role}, nil
}
