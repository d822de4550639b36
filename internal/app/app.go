package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"

	"github.com/GoArmGo/BookingApp/internal/auth"
	"github.com/GoArmGo/BookingApp/internal/config"
	"github.com/GoArmGo/BookingApp/internal/core/ports"
	"github.com/GoArmGo/BookingApp/internal/usecase"
)

// App собирает зависимости и запускает процесс в одной из ролей:
// user (HTTP user service), booking (HTTP booking service),
// notifier (воркер уведомлений из RabbitMQ).
type App struct {
	Config         *config.Config
	logger         *slog.Logger
	db             *sqlx.DB
	tokens         *auth.TokenService
	userStorage    ports.UserStorage
	userUseCase    usecase.UserUseCase
	bookingUseCase usecase.BookingUseCase
	consumer       ports.BookingNotificationConsumer
}

func NewApp(cfg *config.Config,
	logger *slog.Logger,
	db *sqlx.DB,
	tokens *auth.TokenService,
	userStorage ports.UserStorage,
	userUseCase usecase.UserUseCase,
	bookingUseCase usecase.BookingUseCase,
	consumer ports.BookingNotificationConsumer) *App {
	return &App{
		Config:         cfg,
		logger:         logger,
		db:             db,
		tokens:         tokens,
		userStorage:    userStorage,
		userUseCase:    userUseCase,
		bookingUseCase: bookingUseCase,
		consumer:       consumer,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context, mode *string) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("[app] Запуск в режиме: %s", *mode)

	var err error

	switch *mode {
	case "user":
		err = runUserServer(ctx, a.Config, a.userUseCase, a.tokens, a.logger)

	case "booking":
		err = runBookingServer(ctx, a.Config, a.bookingUseCase, a.tokens, a.logger)

	case "notifier":
		err = runNotifier(ctx, a.userStorage, a.consumer, a.logger)

	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'user', 'booking' или 'notifier')", *mode)
	}

	if err != nil {
		return err
	}

	log.Println("[app] Завершение работы...")

	if closeErr := a.Shutdown(); closeErr != nil {
		log.Printf("[app] ошибка при завершении: %v", closeErr)
	}

	log.Println("[app] Завершено корректно.")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}

	// если consumer имеет метод Close — вызываем его
	if closer, ok := a.consumer.(interface{ Close() }); ok {
		closer.Close()
	}

	return nil
}
