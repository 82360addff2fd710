package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	InsertUser = `INSERT INTO users (id, login, password, role)
					VALUES ($1, $2, $3, $4)
					ON CONFLICT (login) DO NOTHING
					RETURNING id;`
	GetUser = `SELECT id, login, password, role FROM users WHERE login = $1;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

func (s *UserDatabase) GetUser(ctx context.Context, login string) (*models.UserData, error) {
	var user models.UserData
	err := s.DB.Pool.QueryRow(ctx, GetUser, login).Scan(&user.UserID, &user.Login, &user.PasswordHash, &user.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// AddUser - добавление пользователя, возвращает его идентификатор
func (s *UserDatabase) AddUser(ctx context.Context, login string, password string) (string, error) {
	var userID string
	err := s.DB.Pool.QueryRow(ctx, InsertUser, uuid.New().String(), login, password, models.RoleCustomer).Scan(&userID)
	if err == nil {
		return userID, nil
	}
	// ON CONFLICT DO NOTHING не возвращает строк
	if errors.Is(err, pgx.ErrNoRows) || isPgError(err, uniqueViolation) {
		return "", ErrAlreadyExists
	}
	return "", fmt.Errorf("failed to add user: %w", err)
}
