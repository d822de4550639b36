package usecase

import (
	"context"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/google/uuid"
)

// UserUseCase определяет интерфейс бизнес-логики работы с пользователями
type UserUseCase interface {
	// Register регистрирует нового пользователя: валидация полей,
	// bcrypt-хэш пароля, вставка в хранилище.
	// domain.ErrUserExists — если email или username уже заняты.
	Register(ctx context.Context, username, email, password string) (uuid.UUID, error)

	// Login проверяет пару email/пароль и выпускает bearer-токен.
	// Любой провал (нет такого email, неверный пароль) — один и тот же
	// domain.ErrInvalidCredentials, чтобы исключить перебор аккаунтов.
	Login(ctx context.Context, email, password string) (string, error)

	// GetProfile возвращает профиль пользователя targetID.
	// Доступ разрешен только к собственному профилю: callerID != targetID
	// дает domain.ErrForbidden еще до похода в хранилище.
	GetProfile(ctx context.Context, callerID, targetID uuid.UUID) (*domain.User, error)
}
