package ports

import (
	"context"

	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"
)

// BookingNotificationPublisher определяет методы для публикации уведомлений о бронировании
// Этот интерфейс использует booking usecase: публикация best-effort,
// ее ошибка не должна валить создание бронирования
type BookingNotificationPublisher interface {
	PublishBookingNotification(ctx context.Context, payload payloads.BookingNotification) error
}

// BookingNotificationConsumer определяет методы для потребления уведомлений о бронировании
// будет использоваться воркером-нотификатором для получения задач из очереди
type BookingNotificationConsumer interface {
	// StartConsumingBookingNotifications начинает прослушивание очереди,
	// принимает функцию-обработчик, которая будет вызываться для каждого сообщения
	StartConsumingBookingNotifications(ctx context.Context, handler func(context.Context, payloads.BookingNotification) error) error
}
