package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/booking-platform/internal/handler"
	"github.com/iliyamo/booking-platform/internal/middleware"
	"github.com/iliyamo/booking-platform/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated /api endpoints:
// registration, login and the two fixed role-filtered user listings.
// The cache middleware, when non-nil, is applied to the listings only;
// registration and login must never serve a cached response.
func RegisterPublic(e *echo.Echo, a *handler.AuthHandler, u *handler.UserHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/api")
	g.POST("/registerAPI", a.RegisterClient)
	g.POST("/registerProfessionalAPI", a.RegisterProfessional)
	g.POST("/login", a.Login)

	if cache != nil {
		g.GET("/professionals", u.ListProfessionals, cache)
		g.GET("/users", u.ListUsers, cache)
	} else {
		g.GET("/professionals", u.ListProfessionals)
		g.GET("/users", u.ListUsers)
	}
}

// RegisterProtected registers the bearer-protected /api endpoints.  The
// group runs JWTAuth followed by RequireRole so that tokens carrying an
// unknown role set never reach a handler.  Fine-grained authorization
// (ownership checks, the professional-only listing) stays inside the
// handlers where the target entity is known.
func RegisterProtected(e *echo.Echo, a *handler.AuthHandler, r *handler.ReservationHandler, jwtSecret string) {
	g := e.Group(
		"/api",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(string(model.RoleUser), string(model.RoleProfessional)),
	)
	g.GET("/howiam", a.WhoAmI)

	g.POST("/reservation/create", r.Create)
	g.PUT("/reservation/:id", r.Modify)
	g.DELETE("/reservation/:id", r.Delete)

	g.GET("/reservations/me", r.ListMine)
	g.GET("/professional/reservations", r.ListForProfessional)
}
