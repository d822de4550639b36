package ports

import (
	"context"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/google/uuid"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// CreateUser сохраняет нового пользователя.
	// При нарушении уникальности email/username возвращает domain.ErrUserExists.
	CreateUser(ctx context.Context, user *domain.User) error

	// FindUserByEmail ищет пользователя по email, domain.ErrUserNotFound если его нет.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByID ищет пользователя по id, domain.ErrUserNotFound если его нет.
	FindUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// BookingStorage определяет методы для взаимодействия с хранилищем бронирований
type BookingStorage interface {
	// SaveBooking сохраняет бронирование. UserID в нем уже проставлен usecase-слоем.
	SaveBooking(ctx context.Context, booking *domain.Booking) error

	// ListBookingsByUser возвращает все бронирования владельца.
	ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
}

// EventChecker определяет метод проверки существования события во внешнем Event Service
type EventChecker interface {
	// CheckEventExists возвращает метаданные события или domain.ErrEventNotFound.
	CheckEventExists(ctx context.Context, eventID string) (*domain.Event, error)
}
