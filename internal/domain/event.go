package domain

import "time"

// Event представляет метаданные события из внешнего Event Service.
// Мы его не храним, только читаем при создании бронирования.
type Event struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Date             time.Time `json:"date"`
	Location         string    `json:"location"`
	AvailableTickets int       `json:"available_tickets"`
	Price            float64   `json:"price"`
}
