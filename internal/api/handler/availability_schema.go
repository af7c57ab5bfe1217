package handler

import "time"

// setAvailabilityRequest carries the full slot set for one date; the write
// replaces whatever was stored before. An empty times array clears the date.
type setAvailabilityRequest struct {
	Times []string `json:"times" validate:"dive,required"`
}

type availabilityResponse struct {
	LecturerID string    `json:"lecturer_id"`
	Date       string    `json:"date"`
	Times      []string  `json:"times"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

type bookableSlotResponse struct {
	Time     string `json:"time"`
	Bookable bool   `json:"bookable"`
}

type bookableSlotsResponse struct {
	LecturerID string                 `json:"lecturer_id"`
	Date       string                 `json:"date"`
	Slots      []bookableSlotResponse `json:"slots"`
}
