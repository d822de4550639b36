package usecase

import (
	"context"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/google/uuid"
)

// BookingUseCase определяет интерфейс бизнес-логики бронирования билетов
type BookingUseCase interface {
	// CreateBooking создает бронирование для владельца токена.
	// Порядок строго такой: проверка события во внешнем Event Service
	// (жесткое предусловие), вставка в хранилище, best-effort публикация
	// уведомления. Владелец всегда ownerID, тело запроса его не задает.
	CreateBooking(ctx context.Context, ownerID uuid.UUID, eventID string, amount float64, numTickets int) (*domain.Booking, *domain.Event, error)

	// ListBookings возвращает бронирования владельца токена.
	ListBookings(ctx context.Context, ownerID uuid.UUID) ([]domain.Booking, error)
}
