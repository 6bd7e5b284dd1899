package advance_booking_status

// AdvanceStatusRequest HTTP request model
type AdvanceStatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note,omitempty"`
}
