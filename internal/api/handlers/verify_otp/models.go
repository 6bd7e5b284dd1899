package verify_otp

import (
	"time"

	"github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/session"
)

// VerifyOTPRequest HTTP request model
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// VerifyOTPResponse HTTP response model
type VerifyOTPResponse struct {
	Token     string `json:"token"`
	Phone     string `json:"phone"`
	ExpiresAt string `json:"expiresAt"`
}

// FromSession конвертирует сессию в HTTP response
func FromSession(s *session.Session) *VerifyOTPResponse {
	return &VerifyOTPResponse{
		Token:     s.Token,
		Phone:     s.Phone,
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
	}
}
