package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GoArmGo/BookingApp/internal/auth"
	"github.com/GoArmGo/BookingApp/internal/config"
	"github.com/GoArmGo/BookingApp/internal/handler"
	"github.com/GoArmGo/BookingApp/internal/usecase"
)

// runUserServer запускает HTTP сервер user service
func runUserServer(
	ctx context.Context,
	cfg *config.Config,
	userUseCase usecase.UserUseCase,
	tokens *auth.TokenService,
	logger *slog.Logger,
) error {
	userHandler := handler.NewUserHandler(userUseCase, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Post("/users/register", userHandler.Register)
	r.Post("/users/login", userHandler.Login)

	// Профиль только по валидному токену и только свой
	r.Group(func(r chi.Router) {
		r.Use(handler.Authenticate(tokens, logger))
		r.Get("/users/{id}", userHandler.GetProfile)
	})

	return serveHTTP(ctx, cfg.UserServicePort, r, "user service")
}

// serveHTTP поднимает сервер и гасит его по отмене контекста
func serveHTTP(ctx context.Context, port string, h http.Handler, name string) error {
	serverAddr := fmt.Sprintf(":%s", port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: h,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Сервер %s запущен на %s", name, serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера %s: %w", name, err)
	case <-ctx.Done():
	}

	log.Printf("Получен сигнал завершения. Завершаем работу сервера %s...", name)

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Printf("Сервер %s успешно завершил работу.", name)
	return nil
}
