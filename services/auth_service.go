package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/muskiz/beach-handball/utils"
)

// AuthService проверяет пароль организатора. Учётная запись одна,
// поэтому вместо репозитория пользователей хранится только хэш.
type AuthService interface {
	Login(ctx context.Context, password string) error
}

type LoginInput struct {
	Password string `json:"password" validate:"required"`
}

type authService struct {
	passwordHash string
	logger       *slog.Logger
}

// NewAuthService принимает готовый bcrypt-хэш или, если его нет, открытый пароль.
func NewAuthService(passwordHash, password string, logger *slog.Logger) (AuthService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if passwordHash == "" {
		if password == "" {
			return nil, errors.New("admin password is not configured")
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("ошибка хеширования пароля: %w", err)
		}
		passwordHash = hash
	}
	return &authService{passwordHash: passwordHash, logger: logger}, nil
}

func (s *authService) Login(ctx context.Context, password string) error {
	if err := validateInput(LoginInput{Password: password}); err != nil {
		return err
	}
	if !utils.CheckPasswordHash(password, s.passwordHash) {
		s.logger.WarnContext(ctx, "failed admin login attempt")
		return ErrAuthInvalidCredentials
	}
	return nil
}
