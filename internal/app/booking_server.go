package app

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GoArmGo/BookingApp/internal/auth"
	"github.com/GoArmGo/BookingApp/internal/config"
	"github.com/GoArmGo/BookingApp/internal/handler"
	"github.com/GoArmGo/BookingApp/internal/usecase"
)

// runBookingServer запускает HTTP сервер booking service.
// Все маршруты за bearer-токеном, ответы всегда в рамках владельца токена.
func runBookingServer(
	ctx context.Context,
	cfg *config.Config,
	bookingUseCase usecase.BookingUseCase,
	tokens *auth.TokenService,
	logger *slog.Logger,
) error {
	bookingHandler := handler.NewBookingHandler(bookingUseCase, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(handler.Authenticate(tokens, logger))

	r.Post("/bookings/", bookingHandler.CreateBooking)
	r.Get("/bookings/", bookingHandler.ListBookings)

	return serveHTTP(ctx, cfg.BookingServicePort, r, "booking service")
}
