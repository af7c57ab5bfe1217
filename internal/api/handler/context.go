package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxSession extracts the session claims injected by the Auth middleware and
// fast-fails before any service call: both uid and role must be present, or
// the token is structurally valid but operationally unusable.
func ctxSession(c echo.Context) (uid, role string, err error) {
	uid, _ = c.Get("uid").(string)
	role, _ = c.Get("role").(string)
	if uid == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return uid, role, nil
}
