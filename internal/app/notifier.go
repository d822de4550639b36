package app

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/GoArmGo/BookingApp/internal/core/ports"
	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"
)

// runNotifier запускает потребителя RabbitMQ и обрабатывает уведомления о бронированиях.
// Для каждого сообщения разрешаем email владельца через хранилище пользователей
// и пишем "отправленное" письмо в лог — доставка здесь симулируется.
func runNotifier(
	ctx context.Context,
	userStorage ports.UserStorage,
	consumer ports.BookingNotificationConsumer,
	logger *slog.Logger,
) error {
	log.Println("Нотификатор запущен. Ожидание сообщений в очереди RabbitMQ...")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	messageHandler := func(ctx context.Context, payload payloads.BookingNotification) error {
		logger.Info("booking notification received",
			"booking_id", payload.BookingID,
			"user_id", payload.UserID,
			"event_id", payload.EventID,
			"amount", payload.Amount,
			"num_tickets", payload.NumTickets,
		)

		user, err := userStorage.FindUserByID(ctx, payload.UserID)
		if err != nil {
			// Висячий владелец — допустимое состояние данных,
			// сообщение подтверждаем, а не гоняем по кругу.
			if errors.Is(err, domain.ErrUserNotFound) {
				logger.Warn("booking owner not found, notification skipped",
					"user_id", payload.UserID,
					"booking_id", payload.BookingID,
				)
				return nil
			}
			return err
		}

		logger.Info("booking confirmation email sent",
			"email", user.Email,
			"booking_id", payload.BookingID,
			"num_tickets", payload.NumTickets,
		)
		return nil
	}

	if err := consumer.StartConsumingBookingNotifications(workerCtx, messageHandler); err != nil {
		return err
	}

	<-ctx.Done()

	log.Println("Notifier: Получен сигнал завершения. Завершаем работу воркера...")
	cancelWorker()

	log.Println("Notifier: Воркер успешно завершил работу.")
	return nil
}
