package payloads

import "github.com/google/uuid"

// BookingNotification — сообщение в очереди booking_queue.
// Публикуется booking-сервисом после сохранения бронирования,
// потребляется воркером-нотификатором.
type BookingNotification struct {
	UserID     uuid.UUID `json:"user_id"`
	BookingID  uuid.UUID `json:"booking_id"`
	EventID    string    `json:"event_id"`
	Amount     float64   `json:"amount"`
	NumTickets int       `json:"num_tickets"`
}
