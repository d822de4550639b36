package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking представляет модель бронирования билетов,
// соответствует таблице bookings в бд.
// UserID всегда проставляется сервером из проверенного токена,
// из тела запроса он не принимается никогда.
type Booking struct {
	ID         uuid.UUID `json:"id" db:"id"`
	EventID    string    `json:"event_id" db:"event_id"`
	Amount     float64   `json:"amount" db:"amount"`
	NumTickets int       `json:"num_tickets" db:"num_tickets"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
