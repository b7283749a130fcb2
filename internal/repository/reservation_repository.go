package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/booking-platform/internal/model"
)

// ReservationRepo provides CRUD operations over the 'reservation' table.
// Each row links a client to a professional at a start instant.  The
// professionel_id column is nullable in the schema, so reads go through
// sql.NullInt64; writes always carry a professional because the creation
// flow requires one.  All timestamps are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// Create inserts a new reservation and populates the generated ID on the
// provided record.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservation (client_id, professionel_id, debut, valide) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, res.ClientID, res.ProfessionalID, res.Debut, res.Valide)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	return nil
}

// GetByID fetches a single reservation.  sql.ErrNoRows is returned when
// no row with the given id exists.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (model.Reservation, error) {
	const q = `SELECT id, client_id, professionel_id, debut, valide FROM reservation WHERE id = ?`
	return scanReservation(r.db.QueryRowContext(ctx, q, id))
}

// Update rewrites the mutable columns of a reservation.  Partial update
// semantics live in the handler: it loads the row, applies only the
// fields present in the request and hands the merged record back here.
func (r *ReservationRepo) Update(ctx context.Context, res model.Reservation) error {
	const q = `UPDATE reservation SET debut = ?, valide = ?, professionel_id = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, res.Debut, res.Valide, res.ProfessionalID, res.ID)
	return err
}

// Delete permanently removes a reservation row.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reservation WHERE id = ?`, id)
	return err
}

// ListByClient returns all reservations created by the given client,
// ordered by start time.  An empty slice is returned when none exist.
func (r *ReservationRepo) ListByClient(ctx context.Context, clientID uint64) ([]model.Reservation, error) {
	const q = `SELECT id, client_id, professionel_id, debut, valide FROM reservation WHERE client_id = ? ORDER BY debut, id`
	return r.list(ctx, q, clientID)
}

// ListByProfessional returns all reservations assigned to the given
// professional, ordered by start time.
func (r *ReservationRepo) ListByProfessional(ctx context.Context, professionalID uint64) ([]model.Reservation, error) {
	const q = `SELECT id, client_id, professionel_id, debut, valide FROM reservation WHERE professionel_id = ? ORDER BY debut, id`
	return r.list(ctx, q, professionalID)
}

func (r *ReservationRepo) list(ctx context.Context, query string, arg uint64) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		var prof sql.NullInt64
		if err := rows.Scan(&res.ID, &res.ClientID, &prof, &res.Debut, &res.Valide); err != nil {
			return nil, err
		}
		if prof.Valid {
			res.ProfessionalID = uint64(prof.Int64)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func scanReservation(row *sql.Row) (model.Reservation, error) {
	var res model.Reservation
	var prof sql.NullInt64
	if err := row.Scan(&res.ID, &res.ClientID, &prof, &res.Debut, &res.Valide); err != nil {
		return model.Reservation{}, err
	}
	if prof.Valid {
		res.ProfessionalID = uint64(prof.Int64)
	}
	return res, nil
}
