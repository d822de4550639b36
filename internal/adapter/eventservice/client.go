package eventservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GoArmGo/BookingApp/internal/config"
	"github.com/GoArmGo/BookingApp/internal/domain"
)

// EventAPIClient представляет клиент для взаимодействия с внешним Event Service.
// Проверка существования события — жесткое предусловие создания бронирования,
// поэтому у клиента собственный таймаут: зависший Event Service
// не должен держать запрос вечно.
type EventAPIClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewEventAPIClient создает новый экземпляр EventAPIClient.
func NewEventAPIClient(cfg *config.Config) *EventAPIClient {
	return &EventAPIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.EventServiceURL,
	}
}

// CheckEventExists выполняет GET /api/events/{id} и маппит ответ в domain.Event.
// 404 от Event Service переводится в domain.ErrEventNotFound,
// любой другой не-200 статус — в обернутую ошибку.
func (c *EventAPIClient) CheckEventExists(ctx context.Context, eventID string) (*domain.Event, error) {
	endpoint := fmt.Sprintf("%s/api/events/%s", c.baseURL, eventID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания HTTP-запроса: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения HTTP-запроса к Event Service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrEventNotFound
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("event Service вернул статус %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var eventResp EventResponse
	if err := json.NewDecoder(resp.Body).Decode(&eventResp); err != nil {
		return nil, fmt.Errorf("ошибка декодирования JSON ответа Event Service: %w", err)
	}

	return mapEventToDomain(&eventResp), nil
}

// mapEventToDomain преобразует EventResponse в domain.Event.
func mapEventToDomain(e *EventResponse) *domain.Event {
	return &domain.Event{
		ID:               e.ID,
		Name:             e.Name,
		Date:             e.Date,
		Location:         e.Location,
		AvailableTickets: e.AvailableTickets,
		Price:            e.Price,
	}
}
