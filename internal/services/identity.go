package services

//go:generate mockgen -source=identity.go -destination=mocks/identity_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type IdentityService interface {
	RegisterUser(ctx context.Context, user models.UserRequest) (*models.Identity, error)
	AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.Identity, error)
	GenerateJWT(identity models.Identity) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Storage storage.UsersStorage
}

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrEmptyCredentials   = errors.New("login and password are required")
)

const (
	TokenSecretAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

// Создание сервиса
func NewIdentity(secret string, storage storage.UsersStorage) *Identity {
	tokenAuth := jwtauth.New(TokenSecretAlgo, []byte(secret), nil)
	return &Identity{JWTAuth: tokenAuth, Storage: storage}
}

// Регистрация нового пользователя
func (i *Identity) RegisterUser(ctx context.Context, user models.UserRequest) (*models.Identity, error) {
	if strings.TrimSpace(user.Login) == "" || user.Password == "" {
		return nil, ErrEmptyCredentials
	}
	logger.Info("Register user:", user.Login)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return nil, err
	}

	userID, err := i.Storage.AddUser(ctx, user.Login, string(hashedPassword))
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("User already exist", user.Login)
			return nil, ErrUserAlreadyExists
		}
		logger.Error("Error registering user", user.Login, err)
		return nil, err
	}
	return &models.Identity{UserID: userID, Username: user.Login, Role: models.RoleCustomer}, nil
}

// Аутентификация пользователя
func (i *Identity) AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.Identity, error) {
	if strings.TrimSpace(user.Login) == "" || user.Password == "" {
		return nil, ErrEmptyCredentials
	}
	logger.Info("Authenticate user", user.Login)

	data, err := i.Storage.GetUser(ctx, user.Login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		logger.Error("Error getting user", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(data.PasswordHash), []byte(user.Password)); err != nil {
		logger.Warn("Invalid password", user.Login)
		return nil, ErrInvalidCredentials
	}

	logger.Info("User authenticated", user.Login)
	return &models.Identity{UserID: data.UserID, Username: data.Login, Role: data.Role}, nil
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(identity models.Identity) (string, error) {
	claims := map[string]interface{}{
		"user_id":  identity.UserID,
		"username": identity.Username,
		"role":     identity.Role,
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(claims)
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
