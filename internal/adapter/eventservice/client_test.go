package eventservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/BookingApp/internal/config"
	"github.com/GoArmGo/BookingApp/internal/domain"
)

func newTestClient(baseURL string) *EventAPIClient {
	cfg := &config.Config{EventServiceURL: baseURL}
	return NewEventAPIClient(cfg)
}

func TestCheckEventExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/events/E1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"_id": "E1",
			"name": "Concert",
			"date": "2026-10-01T19:00:00Z",
			"location": "Hall A",
			"available_tickets": 100,
			"price": 25.5
		}`))
	}))
	defer srv.Close()

	event, err := newTestClient(srv.URL).CheckEventExists(context.Background(), "E1")
	require.NoError(t, err)

	assert.Equal(t, "E1", event.ID)
	assert.Equal(t, "Concert", event.Name)
	assert.Equal(t, "Hall A", event.Location)
	assert.Equal(t, 100, event.AvailableTickets)
	assert.Equal(t, 25.5, event.Price)
	assert.Equal(t, time.Date(2026, 10, 1, 19, 0, 0, 0, time.UTC), event.Date)
}

func TestCheckEventExistsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Event not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CheckEventExists(context.Background(), "NOPE")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestCheckEventExistsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CheckEventExists(context.Background(), "E1")
	require.Error(t, err)
	// внутренняя ошибка внешнего сервиса — не "событие не найдено"
	assert.NotErrorIs(t, err, domain.ErrEventNotFound)
}

func TestCheckEventExistsUnreachable(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:1").CheckEventExists(context.Background(), "E1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEventNotFound)
}
