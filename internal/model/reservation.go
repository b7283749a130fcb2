package model

import "time"

// Reservation pairs a client with a professional at a start instant.
// There is no end or duration column; `debut` alone describes when the
// booking begins.  The client reference is set once at creation to the
// authenticated caller and never reassigned.  The professional is
// required by the creation flow; the column remains nullable in the
// schema so rows written before that rule was enforced still scan.
//
// Fields:
//  ID             : primary key identifier.
//  ClientID       : user who created the reservation (reservation.client_id).
//  ProfessionalID : professional the booking is assigned to
//                   (reservation.professionel_id).
//  Debut          : start instant of the reservation (reservation.debut).
//  Valide         : whether the reservation has been validated; defaults
//                   to false, meaning pending (reservation.valide).
type Reservation struct {
	ID             uint64    // reservation.id
	ClientID       uint64    // reservation.client_id
	ProfessionalID uint64    // reservation.professionel_id
	Debut          time.Time // reservation.debut
	Valide         bool      // reservation.valide
}
