package msgflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент MSG91 flow API для side-channel уведомлений о бронированиях
// Доставка best-effort / at-most-once: ошибки не входят в контракт
// корректности бронирования
type Client struct {
	url        string
	authKey    string
	templateID string
	recipient  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(url, authKey, templateID, recipient string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:        url,
		authKey:    authKey,
		templateID: templateID,
		recipient:  recipient,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingCreated отправляет уведомление о созданном бронировании
// Сериализованное бронирование передаётся переменной шаблона
func (c *Client) SendBookingCreated(ctx context.Context, booking *domain.Booking) error {
	payload, err := json.Marshal(bookingPayload(booking))
	if err != nil {
		return fmt.Errorf("%w: failed to marshal booking: %v", ErrInternal, err)
	}

	body, err := json.Marshal(flowRequest{
		TemplateID: c.templateID,
		ShortURL:   "1",
		Recipients: []flowRecipient{
			{
				Mobiles: c.recipient,
				Var1:    string(payload),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("authkey", c.authKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrDeliveryFailed, resp.StatusCode, string(respBody))
	}

	c.log.Info("Booking notification delivered: booking_id=%s", booking.ID)
	return nil
}

// bookingPayload плоское представление бронирования для переменной шаблона
func bookingPayload(b *domain.Booking) map[string]interface{} {
	return map[string]interface{}{
		"id":          b.ID,
		"chefId":      b.Chef.ID,
		"chefName":    b.Chef.Name,
		"date":        b.Date.Format(domain.DateFormat),
		"time":        b.StartTime.String(),
		"guests":      b.Guests,
		"hours":       b.Hours,
		"location":    b.EventLocation,
		"occasion":    b.Occasion,
		"details":     b.Details,
		"totalAmount": b.TotalAmount,
		"status":      string(b.Status),
		"createdAt":   b.CreatedAt.Format(time.RFC3339),
	}
}
