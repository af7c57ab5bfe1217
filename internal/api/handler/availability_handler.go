package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gcbs/appointment-system/internal/core/domain"
	"github.com/gcbs/appointment-system/internal/core/ports"
)

// AvailabilityHandler handles HTTP requests for availability and the derived
// bookable-slot list.
type AvailabilityHandler struct {
	service ports.ScheduleService
}

func NewAvailabilityHandler(service ports.ScheduleService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

func toAvailabilityResponse(rec *domain.AvailabilityRecord) availabilityResponse {
	return availabilityResponse{
		LecturerID: rec.LecturerID,
		Date:       rec.Date,
		Times:      rec.Times,
		UpdatedAt:  rec.UpdatedAt,
	}
}

// Set handles PUT /v1/availability/:date — the authenticated lecturer
// replaces their slot set for the date.
//
// @Summary      Set availability for a date
// @Tags         availability
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        date  path      string                  true  "Date (2006-01-02)"
// @Param        body  body      setAvailabilityRequest  true  "Slot labels"
// @Success      200   {object}  availabilityResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/availability/{date} [put]
func (h *AvailabilityHandler) Set(c echo.Context) error {
	uid, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req setAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.service.SetAvailability(c.Request().Context(), uid, c.Param("date"), req.Times)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAvailabilityResponse(rec))
}

// Get handles GET /v1/availability/:date — the authenticated lecturer reads
// their own declared slots for the date.
//
// @Summary      Get own availability for a date
// @Tags         availability
// @Produce      json
// @Security     BearerAuth
// @Param        date  path      string  true  "Date (2006-01-02)"
// @Success      200   {object}  availabilityResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/availability/{date} [get]
func (h *AvailabilityHandler) Get(c echo.Context) error {
	uid, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	rec, err := h.service.GetAvailability(c.Request().Context(), uid, c.Param("date"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAvailabilityResponse(rec))
}

// Slots handles GET /v1/lecturers/:id/slots?date= — any authenticated user
// gets the derived bookable-slot list for a lecturer and date.
//
// @Summary      List bookable slots for a lecturer and date
// @Tags         availability
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Lecturer id"
// @Param        date  query     string  true  "Date (2006-01-02)"
// @Success      200   {object}  bookableSlotsResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/lecturers/{id}/slots [get]
func (h *AvailabilityHandler) Slots(c echo.Context) error {
	if _, _, err := ctxSession(c); err != nil {
		return err
	}

	lecturerID := c.Param("id")
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter is required")
	}

	slots, err := h.service.BookableSlots(c.Request().Context(), lecturerID, date)
	if err != nil {
		return err
	}

	out := make([]bookableSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, bookableSlotResponse{Time: s.Time, Bookable: s.Bookable})
	}
	return c.JSON(http.StatusOK, bookableSlotsResponse{
		LecturerID: lecturerID,
		Date:       date,
		Slots:      out,
	})
}
