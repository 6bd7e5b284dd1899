package chefdirectory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего API каталога поваров
type Client struct {
	baseURL         string
	getDataEndpoint string
	httpClient      *http.Client
	log             Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL, getDataEndpoint string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:         baseURL,
		getDataEndpoint: getDataEndpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// directoryResponse ответ каталога: объект с полем users
// Users декодируется в два шага, чтобы отличить отсутствующее
// или не-списочное поле (FormatError) от транспортной ошибки
type directoryResponse struct {
	Users json.RawMessage `json:"users"`
}

// GetChefs получает полный список поваров и нормализует каждую запись
func (c *Client) GetChefs(ctx context.Context) ([]domain.Chef, error) {
	raw, err := c.fetchUsers(ctx, c.baseURL)
	if err != nil {
		return nil, err
	}

	chefs := make([]domain.Chef, 0, len(raw))
	for _, record := range raw {
		chefs = append(chefs, record.Normalize())
	}

	c.log.Info("Fetched %d chefs from directory", len(chefs))
	return chefs, nil
}

// GetChef получает одного повара по ID через single-chef lookup
// Используется booking-detail flow, чтобы зафиксировать снапшот повара
func (c *Client) GetChef(ctx context.Context, id string) (*domain.Chef, error) {
	lookupURL := fmt.Sprintf("%s%s?id=%s", c.baseURL, c.getDataEndpoint, url.QueryEscape(id))

	raw, err := c.fetchUsers(ctx, lookupURL)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrChefNotFound
	}

	chef := raw[0].Normalize()
	return &chef, nil
}

// fetchUsers выполняет запрос и декодирует поле users
func (c *Client) fetchUsers(ctx context.Context, requestURL string) ([]RawChef, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrFetch, resp.StatusCode, string(body))
	}

	var envelope directoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrFormat, err)
	}

	// Явный null эквивалентен отсутствующему полю
	if len(envelope.Users) == 0 || string(envelope.Users) == "null" {
		return nil, fmt.Errorf("%w: missing users field", ErrFormat)
	}

	var raw []RawChef
	if err := json.Unmarshal(envelope.Users, &raw); err != nil {
		return nil, fmt.Errorf("%w: users field is not a list: %v", ErrFormat, err)
	}

	return raw, nil
}
