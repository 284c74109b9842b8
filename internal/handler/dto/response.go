package dto

import (
	"github.com/malyshevd/PhotoBooker/internal/domain"
)

type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Price           int64  `json:"price"`
	DurationMinutes int    `json:"durationMinutes"`
}

type SlotsResponse struct {
	Slots []string `json:"slots"`
}

type AvailabilityResponse struct {
	Date          string   `json:"date"`
	Bookable      bool     `json:"bookable"`
	Excluded      bool     `json:"excluded"`
	MinSelectable string   `json:"minSelectable"`
	Slots         []string `json:"slots"`
}

type BookingAcceptedResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Error  string                  `json:"error"`
	Fields domain.ValidationErrors `json:"fields"`
}

func ToServiceResponse(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}
