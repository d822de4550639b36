package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/GoArmGo/BookingApp/internal/core/ports"
	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"
)

// bookingUseCase implements BookingUseCase
type bookingUseCase struct {
	bookingStorage ports.BookingStorage
	eventChecker   ports.EventChecker
	publisher      ports.BookingNotificationPublisher
	logger         *slog.Logger
}

// NewBookingUseCase создает новый экземпляр BookingUseCase
func NewBookingUseCase(
	bookingStorage ports.BookingStorage,
	eventChecker ports.EventChecker,
	publisher ports.BookingNotificationPublisher,
	logger *slog.Logger,
) BookingUseCase {
	return &bookingUseCase{
		bookingStorage: bookingStorage,
		eventChecker:   eventChecker,
		publisher:      publisher,
		logger:         logger,
	}
}

// CreateBooking создает бронирование билетов
func (uc *bookingUseCase) CreateBooking(ctx context.Context, ownerID uuid.UUID, eventID string, amount float64, numTickets int) (*domain.Booking, *domain.Event, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, nil, fmt.Errorf("%w: event_id обязателен", domain.ErrValidation)
	}
	if amount <= 0 {
		return nil, nil, fmt.Errorf("%w: amount должен быть больше нуля", domain.ErrValidation)
	}
	if numTickets <= 0 {
		return nil, nil, fmt.Errorf("%w: num_tickets должен быть больше нуля", domain.ErrValidation)
	}

	// 1. Жесткое предусловие: событие должно существовать.
	event, err := uc.eventChecker.CheckEventExists(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			uc.logger.Warn("booking rejected, event not found", "event_id", eventID)
			return nil, nil, domain.ErrEventNotFound
		}
		return nil, nil, fmt.Errorf("usecase: ошибка проверки события: %w", err)
	}

	// 2. Вставка бронирования. Владелец — только из токена.
	booking := &domain.Booking{
		ID:         uuid.New(),
		EventID:    eventID,
		Amount:     amount,
		NumTickets: numTickets,
		UserID:     ownerID,
	}
	if err := uc.bookingStorage.SaveBooking(ctx, booking); err != nil {
		return nil, nil, fmt.Errorf("usecase: ошибка сохранения бронирования: %w", err)
	}

	// 3. Best-effort публикация уведомления: ошибка логируется и глотается,
	// бронирование при этом уже создано и остается созданным.
	notification := payloads.BookingNotification{
		UserID:     ownerID,
		BookingID:  booking.ID,
		EventID:    eventID,
		Amount:     amount,
		NumTickets: numTickets,
	}
	if err := uc.publisher.PublishBookingNotification(ctx, notification); err != nil {
		uc.logger.Error("failed to publish booking notification",
			"booking_id", booking.ID,
			"user_id", ownerID,
			"error", err,
		)
	}

	uc.logger.Info("booking created",
		"booking_id", booking.ID,
		"user_id", ownerID,
		"event_id", eventID,
	)
	return booking, event, nil
}

// ListBookings возвращает бронирования владельца токена
func (uc *bookingUseCase) ListBookings(ctx context.Context, ownerID uuid.UUID) ([]domain.Booking, error) {
	bookings, err := uc.bookingStorage.ListBookingsByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения бронирований: %w", err)
	}
	return bookings, nil
}
