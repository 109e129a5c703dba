// services/pricing.go
package services

import (
	"time"

	"hotel-reservation/models"
)

// Nights counts billable nights in the half-open range [from, until).
// A one-night stay (until = from + 1 day) yields 1.
func Nights(from, until time.Time) int {
	return int(until.Sub(from).Hours() / 24)
}

// TotalPrice prices a stay: the room's unit price (base price plus amenity
// fees) times the number of nights. The result is snapshotted into
// Reservation.PaidPrice at creation and never recomputed afterwards.
func TotalPrice(room models.Room, from, until time.Time) float64 {
	return room.UnitPrice() * float64(Nights(from, until))
}
