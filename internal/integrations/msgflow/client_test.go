package msgflow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
	"github.com/chefhub-in/ChefHub-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            "BK1234ABCD5678",
		UserPhone:     "9876543210",
		Chef:          domain.Chef{ID: "7", Name: "Marco Rossi", HourlyRate: 1000},
		Date:          time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("18:00"),
		Guests:        8,
		Hours:         3,
		EventLocation: "Indiranagar",
		TotalAmount:   3000,
		Status:        domain.StatusPending,
	}
}

func TestClient_SendBookingCreated(t *testing.T) {
	var got flowRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-authkey", r.Header.Get("authkey"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"type": "success"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-authkey", "tpl-1", "919999999999", 5*time.Second, nopLogger{})

	err := client.SendBookingCreated(context.Background(), testBooking())
	require.NoError(t, err)

	assert.Equal(t, "tpl-1", got.TemplateID)
	assert.Equal(t, "1", got.ShortURL)
	require.Len(t, got.Recipients, 1)
	assert.Equal(t, "919999999999", got.Recipients[0].Mobiles)

	// Переменная шаблона несёт сериализованное бронирование
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got.Recipients[0].Var1), &payload))
	assert.Equal(t, "BK1234ABCD5678", payload["id"])
	assert.Equal(t, "Marco Rossi", payload["chefName"])
	assert.Equal(t, "2025-10-20", payload["date"])
	assert.Equal(t, "18:00", payload["time"])
	assert.Equal(t, 3000.0, payload["totalAmount"])
}

func TestClient_SendBookingCreated_Non2xxIsDeliveryError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", "tpl-1", "919999999999", 5*time.Second, nopLogger{})

	err := client.SendBookingCreated(context.Background(), testBooking())
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}
