package models

import (
	"time"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserPhone string
	Status    *string
}

// AdvanceStatusRequest запрос на перевод бронирования в следующий статус
type AdvanceStatusRequest struct {
	UserPhone string
	Status    string
	Note      *string
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserPhone string
	Reason    *string
}

// Response модели

// ChefSnapshotResponse снапшот повара, зафиксированный в бронировании
type ChefSnapshotResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Cuisine           []string `json:"cuisine"`
	HourlyRate        float64  `json:"hourlyRate"`
	Location          string   `json:"location"`
	Distance          float64  `json:"distance"`
	Image             string   `json:"image,omitempty"`
	Rating            float64  `json:"rating"`
	ReviewCount       int      `json:"reviewCount"`
	Experience        int      `json:"experience"`
	Bio               string   `json:"bio,omitempty"`
	Specialties       []string `json:"specialties"`
	Available         bool     `json:"available"`
	IsVeg             bool     `json:"isVeg,omitempty"`
	OnlyIndoorCooking bool     `json:"onlyIndoorCooking,omitempty"`
}

// StatusHistoryEntryResponse запись истории статусов
type StatusHistoryEntryResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"` // ISO 8601
	Note      *string `json:"note,omitempty"`
}

// ProgressStepResponse ступень линии прогресса бронирования
type ProgressStepResponse struct {
	Status    string  `json:"status"`
	Label     string  `json:"label"`
	Completed bool    `json:"completed"`
	Current   bool    `json:"current"`
	Timestamp *string `json:"timestamp,omitempty"`
	Note      *string `json:"note,omitempty"`
}

// ProgressResponse линия прогресса целиком
type ProgressResponse struct {
	Steps       []ProgressStepResponse `json:"steps"`
	Cancelled   bool                   `json:"cancelled"`
	CancelledAt *string                `json:"cancelledAt,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string                       `json:"id"`
	Chef          ChefSnapshotResponse         `json:"chef"`
	Date          string                       `json:"date"` // "2025-10-20"
	Time          string                       `json:"time"` // "18:00"
	Guests        int                          `json:"guests"`
	Hours         float64                      `json:"hours"`
	Location      string                       `json:"location"`
	Occasion      string                       `json:"occasion"`
	Details       string                       `json:"details"`
	TotalAmount   float64                      `json:"totalAmount"`
	Status        string                       `json:"status"`
	StatusLabel   string                       `json:"statusLabel"`
	StatusHistory []StatusHistoryEntryResponse `json:"statusHistory"`
	Progress      ProgressResponse             `json:"progress"`
	CreatedAt     time.Time                    `json:"createdAt"`
	UpdatedAt     time.Time                    `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	history := make([]StatusHistoryEntryResponse, len(b.StatusHistory))
	for i, entry := range b.StatusHistory {
		history[i] = StatusHistoryEntryResponse{
			Status:    string(entry.Status),
			Timestamp: entry.Timestamp.Format(time.RFC3339),
			Note:      entry.Note,
		}
	}

	return &BookingResponse{
		ID: b.ID,
		Chef: ChefSnapshotResponse{
			ID:                b.Chef.ID,
			Name:              b.Chef.Name,
			Cuisine:           b.Chef.Cuisine,
			HourlyRate:        b.Chef.HourlyRate,
			Location:          b.Chef.Location,
			Distance:          b.Chef.Distance,
			Image:             b.Chef.Image,
			Rating:            b.Chef.Rating,
			ReviewCount:       b.Chef.ReviewCount,
			Experience:        b.Chef.Experience,
			Bio:               b.Chef.Bio,
			Specialties:       b.Chef.Specialties,
			Available:         b.Chef.Available,
			IsVeg:             b.Chef.IsVeg,
			OnlyIndoorCooking: b.Chef.OnlyIndoorCooking,
		},
		Date:          b.Date.Format(domain.DateFormat),
		Time:          b.StartTime.String(),
		Guests:        b.Guests,
		Hours:         b.Hours,
		Location:      b.EventLocation,
		Occasion:      b.Occasion,
		Details:       b.Details,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		StatusLabel:   domain.StatusLabels[b.Status],
		StatusHistory: history,
		Progress:      fromDomainTimeline(b.BuildProgressTimeline()),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

func fromDomainTimeline(timeline domain.ProgressTimeline) ProgressResponse {
	steps := make([]ProgressStepResponse, len(timeline.Steps))
	for i, step := range timeline.Steps {
		steps[i] = ProgressStepResponse{
			Status:    string(step.Status),
			Label:     step.Label,
			Completed: step.Completed,
			Current:   step.Current,
			Note:      step.Note,
		}
		if step.Timestamp != nil {
			ts := step.Timestamp.Format(time.RFC3339)
			steps[i].Timestamp = &ts
		}
	}

	resp := ProgressResponse{
		Steps:     steps,
		Cancelled: timeline.Cancelled,
	}
	if timeline.CancelledAt != nil {
		ts := timeline.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &ts
	}
	return resp
}
