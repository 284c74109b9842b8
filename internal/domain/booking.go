package domain

// BookingRequest is the payload forwarded to the remote booking service.
// StartTime keeps the slot label verbatim; EndTime is the derived 24-hour
// wall-clock label. BookingDate is ISO YYYY-MM-DD.
type BookingRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceID   string `json:"serviceId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Occasion    string `json:"occasion"`
	Notes       string `json:"notes"`
}

// SubmissionReceipt is what the remote service returns on success.
type SubmissionReceipt struct {
	Message string `json:"message"`
}

// SubmissionState tracks where a form session is in the submit pipeline.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateValidating SubmissionState = "validating"
	StateInvalid    SubmissionState = "invalid"
	StateDeriving   SubmissionState = "deriving"
	StateSubmitting SubmissionState = "submitting"
	StateSucceeded  SubmissionState = "succeeded"
	StateFailed     SubmissionState = "failed"
)

// BannerKind classifies the status banner shown to the user.
type BannerKind string

const (
	BannerNone    BannerKind = ""
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// SubmissionStatus is the banner state of a form session: empty at the start
// of every attempt, then success or error with a message.
type SubmissionStatus struct {
	Kind    BannerKind
	Message string
}
