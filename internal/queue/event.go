// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published when a reservation is successfully
// created.  It carries enough information for downstream consumers to log
// or analyze bookings without querying the primary database.
type ReservationCreatedEvent struct {
	ReservationID  uint64 `json:"reservation_id"`
	ClientID       uint64 `json:"client_id"`
	ProfessionalID uint64 `json:"professionel_id"`
	Debut          string `json:"debut"`
	Valide         bool   `json:"valide"`
	CreatedAt      string `json:"created_at"`
}
