package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/booking-platform/internal/model"
	"github.com/iliyamo/booking-platform/internal/repository"
	"github.com/iliyamo/booking-platform/internal/utils"
)

// stubUserStore is an in-memory UserStore used by handler tests in place
// of the MySQL-backed repository.
type stubUserStore struct {
	users  map[uint64]model.User
	nextID uint64
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[uint64]model.User), nextID: 1}
}

func (s *stubUserStore) Create(_ context.Context, email, password string, roles []model.Role, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return 0, repository.ErrEmailExists
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	id := s.nextID
	s.nextID++
	s.users[id] = model.User{ID: id, Email: email, PasswordHash: hash, Roles: roles}
	return id, nil
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range s.users {
		if u.Email == strings.ToLower(strings.TrimSpace(email)) {
			return u, nil
		}
	}
	return model.User{}, sql.ErrNoRows
}

func (s *stubUserStore) GetByID(_ context.Context, id uint64) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (s *stubUserStore) ListByRole(_ context.Context, role model.Role) ([]model.User, error) {
	out := make([]model.User, 0)
	for _, u := range s.users {
		if u.HasRole(role) {
			out = append(out, model.User{ID: u.ID, Email: u.Email})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// stubReservationStore is an in-memory ReservationStore.
type stubReservationStore struct {
	rows   map[uint64]model.Reservation
	nextID uint64
}

func newStubReservationStore() *stubReservationStore {
	return &stubReservationStore{rows: make(map[uint64]model.Reservation), nextID: 1}
}

func (s *stubReservationStore) Create(_ context.Context, res *model.Reservation) error {
	res.ID = s.nextID
	s.nextID++
	s.rows[res.ID] = *res
	return nil
}

func (s *stubReservationStore) GetByID(_ context.Context, id uint64) (model.Reservation, error) {
	res, ok := s.rows[id]
	if !ok {
		return model.Reservation{}, sql.ErrNoRows
	}
	return res, nil
}

func (s *stubReservationStore) Update(_ context.Context, res model.Reservation) error {
	s.rows[res.ID] = res
	return nil
}

func (s *stubReservationStore) Delete(_ context.Context, id uint64) error {
	delete(s.rows, id)
	return nil
}

func (s *stubReservationStore) ListByClient(_ context.Context, clientID uint64) ([]model.Reservation, error) {
	return s.filter(func(r model.Reservation) bool { return r.ClientID == clientID }), nil
}

func (s *stubReservationStore) ListByProfessional(_ context.Context, professionalID uint64) ([]model.Reservation, error) {
	return s.filter(func(r model.Reservation) bool { return r.ProfessionalID == professionalID }), nil
}

func (s *stubReservationStore) filter(keep func(model.Reservation) bool) []model.Reservation {
	out := make([]model.Reservation, 0)
	for _, r := range s.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Debut.Equal(out[j].Debut) {
			return out[i].Debut.Before(out[j].Debut)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// newJSONContext builds an Echo context carrying a JSON request body.
func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asClient marks the context as an authenticated plain user.
func asClient(c echo.Context, id uint64) {
	c.Set("user_id", id)
	c.Set("roles", []string{string(model.RoleUser)})
}

// asProfessional marks the context as an authenticated professional.
func asProfessional(c echo.Context, id uint64) {
	c.Set("user_id", id)
	c.Set("roles", []string{string(model.RoleProfessional)})
}

// decodeBody unmarshals a recorded JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}
