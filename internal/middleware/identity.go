package middleware

// identity.go defines helper functions shared across middleware files.
// Currently it provides a userID extraction function used by the rate
// limiter's key strategies.  When no user is authenticated, "guest" is
// returned so anonymous traffic shares a bucket per IP.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// userID renders the authenticated user's ID from the context as a
// string.  JWTAuth stores it as uint64; anything else means the request
// is unauthenticated.
func userID(c echo.Context) string {
	if id, ok := c.Get("user_id").(uint64); ok && id > 0 {
		return strconv.FormatUint(id, 10)
	}
	return "guest"
}
