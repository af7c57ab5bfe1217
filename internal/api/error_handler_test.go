package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gcbs/appointment-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrorCodes(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrAppointmentNotFound, http.StatusNotFound},
		{domain.ErrAvailabilityNotFound, http.StatusNotFound},
		{domain.ErrInvalidDay, http.StatusUnprocessableEntity},
		{domain.ErrInvalidSlot, http.StatusUnprocessableEntity},
		{domain.ErrEmptyPurpose, http.StatusUnprocessableEntity},
		{domain.ErrSlotUnavailable, http.StatusConflict},
		{domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{domain.ErrNotDeletable, http.StatusUnprocessableEntity},
		{domain.ErrForbidden, http.StatusForbidden},
	}

	for _, tc := range cases {
		rec, body := renderError(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["error"] == "" {
			t.Errorf("%v: error message must not be empty", tc.err)
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("transition accept: %w (from cancelled)", domain.ErrInvalidTransition)

	rec, _ := renderError(t, wrapped)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("wrapped domain error must still map, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "invalid payload" {
		t.Fatalf("unexpected message %v", body["error"])
	}
}

func TestHTTPErrorHandler_UnknownErrorHidesCause(t *testing.T) {
	rec, body := renderError(t, errors.New("mongo: connection refused to 10.0.0.5"))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	msg, _ := body["error"].(string)
	if msg == "" || msg != "store unavailable, please retry" {
		t.Fatalf("internal cause must not leak, got %q", msg)
	}
}
