package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gcbs/appointment-system/internal/api/metrics"
	"github.com/gcbs/appointment-system/internal/core/domain"
	"github.com/gcbs/appointment-system/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for the booking lifecycle.
type AppointmentHandler struct {
	service ports.BookingService
}

func NewAppointmentHandler(service ports.BookingService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:         a.ID,
		StudentID:  a.StudentID,
		LecturerID: a.LecturerID,
		Date:       a.Date,
		Time:       a.Time,
		Purpose:    a.Purpose,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// Create handles POST /v1/appointments — a student requests a booking.
//
// @Summary      Request a booking
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      requestBookingRequest  true  "Booking details"
// @Success      201   {object}  appointmentResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	uid, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req requestBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	appt, err := h.service.RequestBooking(c.Request().Context(), ports.RequestBookingInput{
		StudentID:  uid,
		LecturerID: req.LecturerID,
		Date:       req.Date,
		Time:       req.Time,
		Purpose:    req.Purpose,
	})
	metrics.BookingDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BookingsRejectedTotal.WithLabelValues(rejectionReason(err)).Inc()
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toAppointmentResponse(appt))
}

// List handles GET /v1/appointments — the caller's appointments, scoped by
// role, optionally filtered by ?date=.
//
// @Summary      List own appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "Filter by date (2006-01-02)"
// @Success      200   {array}   appointmentViewResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	uid, role, err := ctxSession(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListAppointments(c.Request().Context(), ports.ListAppointmentsInput{
		ActorID: uid,
		Role:    role,
		Date:    c.QueryParam("date"),
	})
	if err != nil {
		return err
	}

	out := make([]appointmentViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toViewResponse(v))
	}
	return c.JSON(http.StatusOK, out)
}

// Accept handles POST /v1/appointments/:id/accept (lecturer).
//
// @Summary      Accept a pending appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Appointment id"
// @Success      200  {object}  appointmentResponse
// @Failure      403  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/appointments/{id}/accept [post]
func (h *AppointmentHandler) Accept(c echo.Context) error {
	return h.transition(c, domain.ActionAccept)
}

// Decline handles POST /v1/appointments/:id/decline (lecturer).
//
// @Summary      Decline a pending appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Appointment id"
// @Success      200  {object}  appointmentResponse
// @Failure      403  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/appointments/{id}/decline [post]
func (h *AppointmentHandler) Decline(c echo.Context) error {
	return h.transition(c, domain.ActionDecline)
}

// Cancel handles POST /v1/appointments/:id/cancel (student).
//
// @Summary      Cancel a pending or accepted appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Appointment id"
// @Success      200  {object}  appointmentResponse
// @Failure      403  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	return h.transition(c, domain.ActionCancel)
}

func (h *AppointmentHandler) transition(c echo.Context, action domain.AppointmentAction) error {
	uid, role, err := ctxSession(c)
	if err != nil {
		return err
	}

	appt, err := h.service.Transition(c.Request().Context(), ports.TransitionInput{
		AppointmentID: c.Param("id"),
		Action:        action,
		ActorID:       uid,
		Role:          role,
	})
	if err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(action), transitionOutcome(err)).Inc()
		return err
	}

	metrics.TransitionsTotal.WithLabelValues(string(action), "applied").Inc()
	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

// Delete handles DELETE /v1/appointments/:id — the owning student removes a
// cancelled appointment permanently.
//
// @Summary      Delete a cancelled appointment
// @Tags         appointments
// @Security     BearerAuth
// @Param        id  path  string  true  "Appointment id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	uid, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), uid); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidDay):
		return "invalid_day"
	case errors.Is(err, domain.ErrInvalidSlot):
		return "invalid_slot"
	case errors.Is(err, domain.ErrEmptyPurpose):
		return "empty_purpose"
	case errors.Is(err, domain.ErrSlotUnavailable):
		return "slot_unavailable"
	default:
		return "store_error"
	}
}

func transitionOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}
