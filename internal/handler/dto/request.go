package dto

// SubmitBookingRequest carries the whole booking form. Fields are not
// bind-validated here: required-ness is reported per field by the intake
// flow so the client can highlight each input.
type SubmitBookingRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
	Occasion  string `json:"occasion"`
	Notes     string `json:"notes"`
}
