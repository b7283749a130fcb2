package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the caller identity into the request context.  The provided
// secret must match the one used when issuing tokens.  Handlers on the
// protected group read the identity via c.Get("user_id") (uint64) and
// c.Get("roles") ([]string).  Any request without a resolvable identity
// is rejected with 401 {"error":"Not authorized"} before reaching a
// handler.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the JWT.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not authorized"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse with the HS256 secret.  The callback pins the signing
			// method so tokens signed with a different algorithm are
			// rejected.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not authorized"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not authorized"})
			}

			// JWT numbers decode as float64; convert the subject into the
			// uint64 user ID handlers expect.
			sub, ok := claims["sub"].(float64)
			if !ok || sub <= 0 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not authorized"})
			}
			c.Set("user_id", uint64(sub))
			c.Set("roles", rolesFromClaim(claims["roles"]))
			return next(c)
		}
	}
}

// rolesFromClaim converts the raw "roles" claim (decoded as []interface{})
// into a string slice.  Unknown shapes yield an empty slice rather than an
// error; role enforcement happens downstream.
func rolesFromClaim(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}
