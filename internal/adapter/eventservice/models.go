package eventservice

import "time"

// EventResponse — ответ Event Service на GET /api/events/{id}
type EventResponse struct {
	ID               string    `json:"_id"`
	Name             string    `json:"name"`
	Date             time.Time `json:"date"`
	Location         string    `json:"location"`
	AvailableTickets int       `json:"available_tickets"`
	Price            float64   `json:"price"`
}
