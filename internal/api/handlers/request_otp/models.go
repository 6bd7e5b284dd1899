package request_otp

// RequestOTPRequest HTTP request model
type RequestOTPRequest struct {
	Phone string `json:"phone"`
}

// RequestOTPResponse HTTP response model
type RequestOTPResponse struct {
	Message string `json:"message"`
}
