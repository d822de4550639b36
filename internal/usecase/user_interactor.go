package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/GoArmGo/BookingApp/internal/auth"
	"github.com/GoArmGo/BookingApp/internal/core/ports"
	"github.com/GoArmGo/BookingApp/internal/domain"
)

// userUseCase implements UserUseCase
type userUseCase struct {
	userStorage ports.UserStorage
	tokens      *auth.TokenService
	logger      *slog.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase
func NewUserUseCase(
	userStorage ports.UserStorage,
	tokens *auth.TokenService,
	logger *slog.Logger,
) UserUseCase {
	return &userUseCase{
		userStorage: userStorage,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register регистрирует нового пользователя
func (uc *userUseCase) Register(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return uuid.Nil, fmt.Errorf("%w: username, email и password обязательны", domain.ErrValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return uuid.Nil, fmt.Errorf("usecase: ошибка хэширования пароля: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := uc.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			uc.logger.Warn("registration rejected, user exists", "email", email)
			return uuid.Nil, domain.ErrUserExists
		}
		return uuid.Nil, fmt.Errorf("usecase: ошибка при создании пользователя: %w", err)
	}

	uc.logger.Info("user registered", "user_id", user.ID)
	return user.ID, nil
}

// Login проверяет учетные данные и выпускает токен.
// Неизвестный email и неверный пароль неразличимы в ответе.
func (uc *userUseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := uc.userStorage.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			uc.logger.Warn("invalid login attempt", "email", email)
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("usecase: ошибка при поиске пользователя: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		uc.logger.Warn("invalid login attempt", "email", email)
		return "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка выпуска токена: %w", err)
	}

	uc.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}

// GetProfile возвращает профиль пользователя с проверкой владения
func (uc *userUseCase) GetProfile(ctx context.Context, callerID, targetID uuid.UUID) (*domain.User, error) {
	if callerID != targetID {
		uc.logger.Warn("profile access denied",
			"caller_id", callerID,
			"target_id", targetID,
		)
		return nil, domain.ErrForbidden
	}

	user, err := uc.userStorage.FindUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("usecase: ошибка при получении профиля: %w", err)
	}

	return user, nil
}
