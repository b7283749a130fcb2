package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/booking-platform/internal/model"
)

// UserHandler exposes the two fixed role-filtered listings.  Responses
// carry only id and email; the password hash never leaves the repository
// record.
type UserHandler struct {
	Users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

type userView struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
}

// ListProfessionals handles GET /api/professionals.
func (h *UserHandler) ListProfessionals(c echo.Context) error {
	return h.listByRole(c, model.RoleProfessional)
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	return h.listByRole(c, model.RoleUser)
}

func (h *UserHandler) listByRole(c echo.Context, role model.Role) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.ListByRole(ctx, role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, userView{ID: u.ID, Email: u.Email})
	}
	return c.JSON(http.StatusOK, views)
}
