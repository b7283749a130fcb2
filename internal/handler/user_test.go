package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/booking-platform/internal/model"
)

func TestListings_FilterByRole(t *testing.T) {
	e := echo.New()
	users := newStubUserStore()
	h := NewUserHandler(users)

	clientID, _ := users.Create(context.Background(), "a@x.com", "p", []model.Role{model.RoleUser}, bcrypt.MinCost)
	proID, _ := users.Create(context.Background(), "b@x.com", "p", []model.Role{model.RoleProfessional}, bcrypt.MinCost)

	c, rec := newJSONContext(e, http.MethodGet, "/api/professionals", "")
	if err := h.ListProfessionals(c); err != nil {
		t.Fatalf("ListProfessionals: %v", err)
	}
	var pros []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &pros); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(pros) != 1 || uint64(pros[0]["id"].(float64)) != proID {
		t.Fatalf("professionals = %v", pros)
	}

	c, rec = newJSONContext(e, http.MethodGet, "/api/users", "")
	if err := h.ListUsers(c); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	var plain []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &plain); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(plain) != 1 || uint64(plain[0]["id"].(float64)) != clientID {
		t.Fatalf("users = %v", plain)
	}
}

func TestListings_NeverExposePassword(t *testing.T) {
	e := echo.New()
	users := newStubUserStore()
	h := NewUserHandler(users)
	_, _ = users.Create(context.Background(), "b@x.com", "hunter2", []model.Role{model.RoleProfessional}, bcrypt.MinCost)

	c, rec := newJSONContext(e, http.MethodGet, "/api/professionals", "")
	if err := h.ListProfessionals(c); err != nil {
		t.Fatalf("ListProfessionals: %v", err)
	}
	body := rec.Body.String()
	if strings.Contains(body, "password") || strings.Contains(body, "$2a$") {
		t.Fatalf("listing leaks password material: %s", body)
	}
}

func TestListings_EmptyIsOkNotNull(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(newStubUserStore())

	c, rec := newJSONContext(e, http.MethodGet, "/api/users", "")
	if err := h.ListUsers(c); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty array, got %s", got)
	}
}
