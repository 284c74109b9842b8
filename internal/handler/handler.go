package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/malyshevd/PhotoBooker/internal/domain"
	"github.com/malyshevd/PhotoBooker/internal/handler/dto"
	"github.com/malyshevd/PhotoBooker/internal/service"
	"github.com/malyshevd/PhotoBooker/internal/timeslot"
)

const dayLayout = "2006-01-02"

type IntakeSvc interface {
	Prepare(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingRequest, *domain.Service, error)
	Forward(ctx context.Context, req *domain.BookingRequest, svc *domain.Service) (*domain.SubmissionReceipt, error)
}

type ReferenceSvc interface {
	List(ctx context.Context) ([]domain.Service, error)
	Availability() *timeslot.Availability
}

type Handler struct {
	reference ReferenceSvc
	intake    IntakeSvc
}

func NewHandler(reference ReferenceSvc, intake IntakeSvc) *Handler {
	return &Handler{
		reference: reference,
		intake:    intake,
	}
}

// ListSlots returns the studio's fixed hourly slot grid.
func (h *Handler) ListSlots(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.SlotsResponse{Slots: timeslot.Generate()})
}

func (h *Handler) ListServices(c *ginext.Context) {
	services, err := h.reference.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, dto.ToServiceResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// GetAvailability answers the calendar picker: whether the queried day can be
// booked, and which slots it would offer.
func (h *Handler) GetAvailability(c *ginext.Context) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	date, err := time.ParseInLocation(dayLayout, raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
		return
	}

	av := h.reference.Availability()
	resp := dto.AvailabilityResponse{
		Date:          raw,
		Bookable:      av.Bookable(date),
		Excluded:      av.IsExcluded(date),
		MinSelectable: av.MinSelectable().Format(dayLayout),
		Slots:         []string{},
	}
	if resp.Bookable {
		resp.Slots = timeslot.Generate()
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitBooking runs one booking attempt through a fresh form session: the
// payload is loaded field by field, then submitted as a whole.
func (h *Handler) SubmitBooking(c *ginext.Context) {
	var req dto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	session := service.NewFormSession(h.intake)
	session.SetName(req.Name)
	session.SetEmail(req.Email)
	session.SetPhone(req.Phone)
	session.SelectService(req.ServiceID)
	session.SelectTime(req.TimeSlot)
	session.SetOccasion(req.Occasion)
	session.SetNotes(req.Notes)

	if req.Date != "" {
		date, err := time.ParseInLocation(dayLayout, req.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
			return
		}
		session.SelectDate(date)
	}

	if err := session.Submit(c.Request.Context()); err != nil {
		h.handleSubmitError(c, session, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.BookingAcceptedResponse{Message: session.Status().Message})
}

func (h *Handler) handleSubmitError(c *ginext.Context, session *service.FormSession, err error) {
	c.Set("error", err.Error())

	var invalid *domain.InvalidDraftError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Error:  "validation failed",
			Fields: invalid.Fields,
		})

	case errors.Is(err, domain.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrServiceNotFound.Error()})

	case errors.Is(err, domain.ErrInvalidServiceDuration),
		errors.Is(err, domain.ErrMalformedSlot):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: session.Status().Message})

	default:
		// Remote rejections and transport failures both surface the
		// banner text the form would show.
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: session.Status().Message})
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
