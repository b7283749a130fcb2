package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/booking-platform/internal/model"
	"github.com/iliyamo/booking-platform/internal/queue"
	"github.com/iliyamo/booking-platform/internal/utils"
)

// EventPublisher pushes domain events onto the message broker.  A nil
// publisher disables event emission; publish failures never fail the
// request.
type EventPublisher func(ctx context.Context, event queue.ReservationCreatedEvent) error

// ReservationHandler implements creation, partial update, deletion and
// the two scoped listings over reservations.  All methods assume JWT
// authentication has already run; they still verify the extracted caller
// identity and respond 401 when it is missing.
type ReservationHandler struct {
	Users        UserStore
	Reservations ReservationStore
	Publish      EventPublisher
}

func NewReservationHandler(users UserStore, reservations ReservationStore, publish EventPublisher) *ReservationHandler {
	return &ReservationHandler{Users: users, Reservations: reservations, Publish: publish}
}

// ----- DTOs -----

type createReservationReq struct {
	Debut          string `json:"debut"`
	ProfessionalID uint64 `json:"professionel_id"`
	Valide         *bool  `json:"valide"`
}

// modifyReservationReq uses pointer fields so that absent keys can be
// told apart from zero values: only fields present in the body are
// applied to the row.
type modifyReservationReq struct {
	Debut          *string `json:"debut"`
	Valide         *bool   `json:"valide"`
	ProfessionalID *uint64 `json:"professionel_id"`
}

type clientReservationView struct {
	ID             uint64 `json:"id"`
	Debut          string `json:"debut"`
	Valide         bool   `json:"valide"`
	ProfessionalID uint64 `json:"professionel_id"`
}

type professionalReservationView struct {
	ID       uint64 `json:"id"`
	Debut    string `json:"debut"`
	Valide   bool   `json:"valide"`
	ClientID uint64 `json:"client_id"`
}

// Create handles POST /api/reservation/create.  The caller becomes the
// reservation's client; the referenced professional must exist.  Both
// debut and professionel_id are required.
func (h *ReservationHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not authorized"})
	}

	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid data"})
	}
	if req.Debut == "" || req.ProfessionalID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid data"})
	}
	debut, err := utils.ParseDebut(req.Debut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid data"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	professional, err := h.Users.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Professional not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	res := model.Reservation{
		ClientID:       uid,
		ProfessionalID: professional.ID,
		Debut:          debut,
		Valide:         req.Valide != nil && *req.Valide,
	}
	if err := h.Reservations.Create(ctx, &res); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
	}

	if h.Publish != nil {
		// Best effort: the reservation is committed, a broker outage only
		// costs the audit trail entry.
		_ = h.Publish(ctx, queue.ReservationCreatedEvent{
			ReservationID:  res.ID,
			ClientID:       res.ClientID,
			ProfessionalID: res.ProfessionalID,
			Debut:          utils.FormatDebut(res.Debut),
			Valide:         res.Valide,
			CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "Reservation created successfully!", "reservation_id": res.ID})
}

// Modify handles PUT /api/reservation/:id.  Only the reservation's client
// or its professional may change it, and only the fields present in the
// body are touched.
func (h *ReservationHandler) Modify(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not authorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid data"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if res.ClientID != uid && res.ProfessionalID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You can only modify reservations you are associated with or created"})
	}

	var req modifyReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid data"})
	}
	if req.Debut != nil {
		debut, err := utils.ParseDebut(*req.Debut)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid data"})
		}
		res.Debut = debut
	}
	if req.Valide != nil {
		res.Valide = *req.Valide
	}
	if req.ProfessionalID != nil {
		professional, err := h.Users.GetByID(ctx, *req.ProfessionalID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "Professional not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		res.ProfessionalID = professional.ID
	}

	if err := h.Reservations.Update(ctx, res); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update reservation failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "Reservation updated successfully!"})
}

// Delete handles DELETE /api/reservation/:id.  Deletion is stricter than
// modification: only the client who created the reservation may remove
// it, never the assigned professional.
func (h *ReservationHandler) Delete(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not authorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid data"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if res.ClientID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You can only delete your own reservations"})
	}

	if err := h.Reservations.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete reservation failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "Reservation deleted successfully!"})
}

// ListMine handles GET /api/reservations/me: every reservation the caller
// created as a client, wrapped in a "reservations" envelope.
func (h *ReservationHandler) ListMine(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not authorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Reservations.ListByClient(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	views := make([]clientReservationView, 0, len(list))
	for _, res := range list {
		views = append(views, clientReservationView{
			ID:             res.ID,
			Debut:          utils.FormatDebut(res.Debut),
			Valide:         res.Valide,
			ProfessionalID: res.ProfessionalID,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": views})
}

// ListForProfessional handles GET /api/professional/reservations.  Only
// professionals may call it; an empty result is reported as 404 rather
// than an empty list, matching the established contract.
func (h *ReservationHandler) ListForProfessional(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not authorized"})
	}
	if !hasRole(getRoles(c), model.RoleProfessional) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Insufficient permissions. Only professionals can view reservations."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Reservations.ListByProfessional(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(list) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "No reservations found for this professional"})
	}
	views := make([]professionalReservationView, 0, len(list))
	for _, res := range list {
		views = append(views, professionalReservationView{
			ID:       res.ID,
			Debut:    utils.FormatDebut(res.Debut),
			Valide:   res.Valide,
			ClientID: res.ClientID,
		})
	}
	return c.JSON(http.StatusOK, views)
}
