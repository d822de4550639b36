package di

import (
	"log"

	"github.com/GoArmGo/BookingApp/internal/adapter/eventservice"
	"github.com/GoArmGo/BookingApp/internal/app"
	"github.com/GoArmGo/BookingApp/internal/auth"
	"github.com/GoArmGo/BookingApp/internal/config"
	"github.com/GoArmGo/BookingApp/internal/database/client"
	"github.com/GoArmGo/BookingApp/internal/database/storage"
	"github.com/GoArmGo/BookingApp/internal/logger"
	"github.com/GoArmGo/BookingApp/internal/rabbitmq"
	"github.com/GoArmGo/BookingApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиентов: sqlx (+миграции) и GORM
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	gormDB, err := client.NewGormClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewGormUserStorage(gormDB, slogger)
	bookingStorage := storage.NewPostgresBookingStorage(dbClient.DB, slogger)

	// 4. Клиент внешнего Event Service
	eventClient := eventservice.NewEventAPIClient(cfg)

	// 5. Инициализация RabbitMQ клиента (он же publisher и consumer)
	rabbitMQClient, err := rabbitmq.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	// 6. Токены
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)

	// 7. Инициализация бизнес-логики (usecases)
	userUseCase := usecase.NewUserUseCase(userStorage, tokens, slogger)
	bookingUseCase := usecase.NewBookingUseCase(bookingStorage, eventClient, rabbitMQClient, slogger)

	// 8. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient.DB,
		tokens,
		userStorage,
		userUseCase,
		bookingUseCase,
		rabbitMQClient,
	)

	log.Println("[container] Все зависимости успешно инициализированы.")
	return application, nil
}
