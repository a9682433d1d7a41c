package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// detailsFields поля, которые запрашиваем у Place Details
const detailsFields = "place_id,formatted_address,address_component"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для Google Places API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Places API
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPlaceDetails получает адресные компоненты места по place_id
func (c *Client) GetPlaceDetails(ctx context.Context, placeID string) (*Place, error) {
	query := url.Values{}
	query.Set("place_id", placeID)
	query.Set("fields", detailsFields)
	query.Set("key", c.apiKey)

	endpoint := fmt.Sprintf("%s/details/json?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var details detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Places API сообщает об ошибках полем status при HTTP 200
	switch details.Status {
	case statusOK:
		// Продолжаем обработку
	case statusNotFound, statusZeroResults, statusInvalidRequest:
		return nil, ErrPlaceNotFound
	default:
		return nil, fmt.Errorf("%w: status %s: %s", ErrInvalidResponse, details.Status, details.ErrorMessage)
	}

	if details.Result.PlaceID == "" {
		details.Result.PlaceID = placeID
	}

	return &details.Result, nil
}

// GetPlaceDetailsWithGracefulDegradation получает место с graceful degradation
// При недоступности Places API возвращает ErrServiceDegraded, что позволяет разобрать адрес из текста
func (c *Client) GetPlaceDetailsWithGracefulDegradation(ctx context.Context, placeID string) (*Place, error) {
	c.log.Info("Fetching place details for place_id=%s", placeID)

	place, err := c.GetPlaceDetails(ctx, placeID)
	if err != nil {
		// Неизвестное место - бизнес-ошибка, пробрасываем её дальше
		if err == ErrPlaceNotFound {
			c.log.Info("Place not found: place_id=%s", placeID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation
		c.log.Error("Places API unavailable, applying graceful degradation for place_id=%s: %v", placeID, err)
		return nil, fmt.Errorf("%w: place_id=%s, error=%v", ErrServiceDegraded, placeID, err)
	}

	c.log.Info("Successfully fetched place_id=%s: %s", placeID, place.FormattedAddress)
	return place, nil
}
