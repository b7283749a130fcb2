package handler

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/booking-platform/internal/model"
)

// UserStore is the persistence surface handlers need for accounts.  It is
// implemented by repository.UserRepo; tests substitute in-memory stubs.
type UserStore interface {
	Create(ctx context.Context, email, password string, roles []model.Role, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
}

// ReservationStore is the persistence surface for reservations,
// implemented by repository.ReservationRepo.
type ReservationStore interface {
	Create(ctx context.Context, res *model.Reservation) error
	GetByID(ctx context.Context, id uint64) (model.Reservation, error)
	Update(ctx context.Context, res model.Reservation) error
	Delete(ctx context.Context, id uint64) error
	ListByClient(ctx context.Context, clientID uint64) ([]model.Reservation, error)
	ListByProfessional(ctx context.Context, professionalID uint64) ([]model.Reservation, error)
}

// getUserID extracts the authenticated caller's ID placed in the context
// by the JWT middleware.
func getUserID(c echo.Context) (uint64, error) {
	if id, ok := c.Get("user_id").(uint64); ok && id > 0 {
		return id, nil
	}
	return 0, errors.New("no user_id in context")
}

// getRoles returns the caller's role tags from the context.  A missing or
// malformed value yields an empty slice.
func getRoles(c echo.Context) []string {
	roles, _ := c.Get("roles").([]string)
	return roles
}

// hasRole reports whether the role tag appears in the caller's role set.
func hasRole(roles []string, want model.Role) bool {
	for _, r := range roles {
		if r == string(want) {
			return true
		}
	}
	return false
}
