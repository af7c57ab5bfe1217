package handler

import (
	"time"

	"github.com/gcbs/appointment-system/internal/core/ports"
)

type requestBookingRequest struct {
	LecturerID string `json:"lecturer_id" validate:"required"`
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
	Time       string `json:"time"        validate:"required"`
	Purpose    string `json:"purpose"     validate:"required"`
}

type appointmentResponse struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	LecturerID string    `json:"lecturer_id"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Purpose    string    `json:"purpose"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// appointmentViewResponse carries the resolved display names alongside the
// raw ids for list rendering.
type appointmentViewResponse struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"student_id"`
	StudentName  string    `json:"student_name,omitempty"`
	LecturerID   string    `json:"lecturer_id"`
	LecturerName string    `json:"lecturer_name,omitempty"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Purpose      string    `json:"purpose"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toViewResponse(v ports.AppointmentView) appointmentViewResponse {
	return appointmentViewResponse{
		ID:           v.ID,
		StudentID:    v.StudentID,
		StudentName:  v.StudentName,
		LecturerID:   v.LecturerID,
		LecturerName: v.LecturerName,
		Date:         v.Date,
		Time:         v.Time,
		Purpose:      v.Purpose,
		Status:       string(v.Status),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
