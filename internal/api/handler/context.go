package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware.
// Both claims must be present, otherwise the request is rejected with 401.
func ctxIdentity(c echo.Context) (userID, userType string, err error) {
	userID, _ = c.Get("user_id").(string)
	userType, _ = c.Get("user_type").(string)
	if userID == "" || userType == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, userType, nil
}
