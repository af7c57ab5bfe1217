package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	routerOnce sync.Once
	testRouter *echo.Echo
	routerErr  error
)

// newTestRouter wires the full route table against stores that are never
// reached: every request below is resolved by middleware or by validation
// that runs before any store access. Built once per binary; the prometheus
// middleware registers its collectors in the default registry.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	routerOnce.Do(func() {
		client, err := mongo.Connect(context.Background(),
			options.Client().ApplyURI("mongodb://127.0.0.1:1").SetServerSelectionTimeout(100*time.Millisecond))
		if err != nil {
			routerErr = err
			return
		}
		rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
		testRouter = NewRouter(client.Database("scheduling_test"), rdb, "secret", nil, zerolog.Nop())
	})
	if routerErr != nil {
		t.Fatalf("mongo client: %v", routerErr)
	}
	return testRouter
}

func signedToken(t *testing.T, uid, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  uid,
		"name": "Test User",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestRouter_SlotReadsOpenToBothRoles(t *testing.T) {
	// Slot reads are open to any authenticated caller; a lecturer previewing
	// their own student-facing list must not be turned away. The weekend date
	// fails inside the service, so a 422 proves the request cleared auth and
	// RBAC and reached the schedule logic without touching a store.
	e := newTestRouter(t)

	for _, role := range []string{"student", "lecturer"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/lecturers/lect_1/slots?date=2026-03-07", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "user_1", role))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code == http.StatusForbidden {
			t.Errorf("role %s: slot read must not be forbidden", role)
		}
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("role %s: expected 422 for weekend date, got %d", role, rec.Code)
		}
	}
}

func TestRouter_SlotReadsRequireAuth(t *testing.T) {
	e := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/lecturers/lect_1/slots?date=2026-03-02", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", rec.Code)
	}
}

func TestRouter_LecturerDirectoryOpenToBothRoles(t *testing.T) {
	e := newTestRouter(t)

	for _, role := range []string{"student", "lecturer"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/lecturers", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "user_1", role))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		// The unreachable store surfaces as 503; the route itself must admit
		// both roles.
		if rec.Code == http.StatusForbidden || rec.Code == http.StatusUnauthorized {
			t.Errorf("role %s: lecturer directory must not reject the caller, got %d", role, rec.Code)
		}
	}
}

func TestRouter_AvailabilityWriteStaysLecturerOnly(t *testing.T) {
	e := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/v1/availability/2026-03-02", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "stud_1", "student"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for a student writing availability, got %d", rec.Code)
	}
}
