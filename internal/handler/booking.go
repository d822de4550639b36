package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/usecase"
)

// BookingHandler — обработчик HTTP-запросов booking service.
type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
	logger         *slog.Logger
}

// NewBookingHandler создаёт новый экземпляр BookingHandler.
func NewBookingHandler(uc usecase.BookingUseCase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: uc,
		logger:         logger,
	}
}

// createBookingRequest — тело POST /bookings/.
// Поля владельца здесь нет намеренно: user_id берется только из токена,
// лишние поля тела запроса молча игнорируются.
type createBookingRequest struct {
	EventID    string  `json:"event_id"`
	Amount     float64 `json:"amount"`
	NumTickets int     `json:"num_tickets"`
}

// CreateBooking — POST /bookings/
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Невалидный токен", h.logger)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid booking request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", h.logger)
		return
	}

	booking, event, err := h.bookingUseCase.CreateBooking(r.Context(), ownerID, req.EventID, req.Amount, req.NumTickets)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		case errors.Is(err, domain.ErrEventNotFound):
			respondWithError(w, http.StatusNotFound, "Событие не найдено", h.logger)
		default:
			h.logger.Error("failed to create booking", "event_id", req.EventID, "error", err)
			respondWithError(w, http.StatusInternalServerError, "Ошибка создания бронирования", h.logger)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Booking successful",
		"booking_id": booking.ID,
		"event":      event,
	}, h.logger)
}

// ListBookings — GET /bookings/, только свои бронирования.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Невалидный токен", h.logger)
		return
	}

	bookings, err := h.bookingUseCase.ListBookings(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("failed to list bookings", "user_id", ownerID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Ошибка получения бронирований", h.logger)
		return
	}

	if bookings == nil {
		bookings = []domain.Booking{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":  ownerID,
		"bookings": bookings,
	}, h.logger)
}
