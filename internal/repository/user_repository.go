package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/iliyamo/booking-platform/internal/model"
	"github.com/iliyamo/booking-platform/internal/utils"
)

// UserRepo persists accounts in the 'user' table.  Roles are stored as a
// JSON array in the roles column.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// ErrEmailExists is returned when an insert violates the unique email
// index.  Handlers translate it into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// Create hashes the password, inserts the user and returns its ID.  Every
// role in the set must belong to the closed role set.
func (r *UserRepo) Create(ctx context.Context, email, password string, roles []model.Role, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, role := range roles {
		if !role.Valid() {
			return 0, errors.New("unknown role: " + string(role))
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	rolesJSON, err := json.Marshal(roles)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO user (email, roles, password) VALUES (?,?,?)",
		email, rolesJSON, hash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT id,email,roles,password FROM user WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT id,email,roles,password FROM user WHERE id=? LIMIT 1", id))
}

// ListByRole returns all users holding the given role tag, ordered by id.
// Password hashes are not selected.
func (r *UserRepo) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,email FROM user WHERE JSON_CONTAINS(roles, JSON_QUOTE(?)) ORDER BY id",
		string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepo) scanOne(row *sql.Row) (model.User, error) {
	var u model.User
	var rolesJSON []byte
	if err := row.Scan(&u.ID, &u.Email, &rolesJSON, &u.PasswordHash); err != nil {
		return model.User{}, err
	}
	if err := json.Unmarshal(rolesJSON, &u.Roles); err != nil {
		return model.User{}, err
	}
	return u, nil
}
