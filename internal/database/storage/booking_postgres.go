package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/GoArmGo/BookingApp/internal/domain"
)

// PostgresBookingStorage реализует ports.BookingStorage поверх sqlx
type PostgresBookingStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPostgresBookingStorage(db *sqlx.DB, logger *slog.Logger) *PostgresBookingStorage {
	return &PostgresBookingStorage{db: db, logger: logger}
}

// SaveBooking сохраняет бронирование в базе данных.
// booking.UserID к этому моменту уже взят из проверенного токена,
// внешнего ключа на users нет — висячий владелец допустим.
func (s *PostgresBookingStorage) SaveBooking(ctx context.Context, booking *domain.Booking) error {
	start := time.Now()

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	booking.CreatedAt = time.Now()

	query := `
	INSERT INTO bookings (id, event_id, amount, num_tickets, user_id, created_at)
	VALUES (:id, :event_id, :amount, :num_tickets, :user_id, :created_at)
	`

	_, err := s.db.NamedExecContext(ctx, query, booking)
	if err != nil {
		s.logger.Error("failed to save booking", "event_id", booking.EventID, "error", err)
		return fmt.Errorf("ошибка при сохранении бронирования: %w", err)
	}

	s.logger.Info("booking saved successfully",
		"booking_id", booking.ID,
		"user_id", booking.UserID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// ListBookingsByUser получает все бронирования владельца
func (s *PostgresBookingStorage) ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	start := time.Now()

	q := `
	SELECT * FROM bookings
	WHERE user_id = $1
	ORDER BY created_at DESC
	`

	var bookings []domain.Booking
	if err := s.db.SelectContext(ctx, &bookings, q, userID); err != nil {
		s.logger.Error("failed to list bookings", "user_id", userID, "error", err)
		return nil, fmt.Errorf("ошибка при получении списка бронирований: %w", err)
	}

	s.logger.Info("listed bookings successfully",
		"user_id", userID,
		"count", len(bookings),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return bookings, nil
}
