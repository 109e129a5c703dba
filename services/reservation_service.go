// services/reservation_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotel-reservation/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// ReservationService wraps *gorm.DB for the reservation booking flow.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// amenityLine is what gets frozen into Reservation.AmenitySnapshot.
type amenityLine struct {
	ID   uint    `json:"id"`
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
}

func snapshotAmenities(room models.Room) (datatypes.JSON, error) {
	lines := make([]amenityLine, 0, len(room.Amenities))
	for _, a := range room.Amenities {
		lines = append(lines, amenityLine{ID: a.ID, Name: a.Name, Fee: a.Fee})
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("marshal amenity snapshot: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func parseStayRange(bookFrom, bookUntil string) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, bookFrom)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date_bookfrom format: %w", err)
	}
	until, err := time.Parse(dateLayout, bookUntil)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date_bookuntil format: %w", err)
	}
	return from, until, nil
}

// authorizeOwner gates mutations to the reservation's owner and staff.
func authorizeOwner(res models.Reservation, userID uint, isStaff bool) error {
	if res.UserID != userID && !isStaff {
		return makeErr(ErrNotOwner, "reservation belongs to another user")
	}
	return nil
}

// repriceReservation applies an admitted date edit: new range, total priced
// against the room's current amenity set, and a refreshed amenity snapshot so
// the stored lines still explain paid_price.
func repriceReservation(res *models.Reservation, room models.Room, from, until time.Time) error {
	snapshot, err := snapshotAmenities(room)
	if err != nil {
		return err
	}
	res.DateBookFrom = from
	res.DateBookUntil = until
	res.PaidPrice = TotalPrice(room, from, until)
	res.AmenitySnapshot = snapshot
	return nil
}

// applyCheckIn stamps date_checkin and reports the room's new availability.
// The caller persists both inside one transaction.
func applyCheckIn(res *models.Reservation, now time.Time) (roomAvailable bool, err error) {
	if err := CanCheckIn(*res); err != nil {
		return false, err
	}
	res.DateCheckIn = &now
	return false, nil
}

// applyCheckOut stamps date_checkout and frees the room.
func applyCheckOut(res *models.Reservation, now time.Time) (roomAvailable bool, err error) {
	if err := CanCheckOut(*res); err != nil {
		return false, err
	}
	res.DateCheckOut = &now
	return true, nil
}

// lockActiveOverlapRows reads, FOR UPDATE, every active reservation that
// belongs to the candidate's room or user. Running the admission decision and
// the insert against these locked rows inside one transaction closes the
// check-then-act race between concurrent bookings.
func lockActiveOverlapRows(tx *gorm.DB, roomID, userID uint) ([]models.Reservation, error) {
	var active []models.Reservation
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("date_checkout IS NULL AND (room_id = ? OR user_id = ?)", roomID, userID).
		Find(&active).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load active reservations: %w", err)
	}
	return active, nil
}

// Create runs the admission check and, on acceptance, prices and persists the
// reservation, all inside a single transaction.
func (s *ReservationService) Create(userID, roomID uint, bookFrom, bookUntil string) (*models.Reservation, error) {
	from, until, err := parseStayRange(bookFrom, bookUntil)
	if err != nil {
		return nil, err
	}

	var created models.Reservation
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Amenities").
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return makeErr(ErrNotFound, fmt.Sprintf("room %d not found", roomID))
			}
			return fmt.Errorf("db error checking room %d: %w", roomID, err)
		}

		active, err := lockActiveOverlapRows(tx, roomID, userID)
		if err != nil {
			return err
		}

		cand := Candidate{RoomID: roomID, UserID: userID, BookFrom: from, BookUntil: until}
		if err := Admit(cand, active); err != nil {
			return err
		}

		snapshot, err := snapshotAmenities(room)
		if err != nil {
			return err
		}

		created = models.Reservation{
			ReferenceCode:   uuid.NewString(),
			RoomID:          roomID,
			UserID:          userID,
			DateBookFrom:    from,
			DateBookUntil:   until,
			PaidPrice:       TotalPrice(room, from, until),
			AmenitySnapshot: snapshot,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDates re-runs admission for an edited stay range, excluding the
// reservation's own prior range, then reprices against the room's current
// amenity set.
func (s *ReservationService) UpdateDates(reservationID, userID uint, isStaff bool, bookFrom, bookUntil string) (*models.Reservation, error) {
	from, until, err := parseStayRange(bookFrom, bookUntil)
	if err != nil {
		return nil, err
	}

	var updated models.Reservation
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&res, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return makeErr(ErrNotFound, "reservation not found")
			}
			return fmt.Errorf("failed to load reservation: %w", err)
		}
		if err := authorizeOwner(res, userID, isStaff); err != nil {
			return err
		}
		if res.DateCheckOut != nil {
			return makeErr(ErrAlreadyOut, "reservation already checked out")
		}

		var room models.Room
		if err := tx.Preload("Amenities").First(&room, res.RoomID).Error; err != nil {
			return fmt.Errorf("failed to load room %d: %w", res.RoomID, err)
		}

		active, err := lockActiveOverlapRows(tx, res.RoomID, res.UserID)
		if err != nil {
			return err
		}

		cand := Candidate{
			ReservationID: res.ID,
			RoomID:        res.RoomID,
			UserID:        res.UserID,
			BookFrom:      from,
			BookUntil:     until,
		}
		if err := Admit(cand, active); err != nil {
			return err
		}

		if err := repriceReservation(&res, room, from, until); err != nil {
			return err
		}
		if err := tx.Save(&res).Error; err != nil {
			return fmt.Errorf("failed to update reservation: %w", err)
		}
		updated = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListForUser returns the user's own reservations; staff see every one.
func (s *ReservationService) ListForUser(userID uint, isStaff bool) ([]models.Reservation, error) {
	var list []models.Reservation
	q := s.DB.Preload("Room.Amenities").Order("created_at DESC")
	if !isStaff {
		q = q.Where("user_id = ?", userID)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

func (s *ReservationService) GetByID(reservationID uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := s.DB.Preload("Room.Amenities").First(&res, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, makeErr(ErrNotFound, "reservation not found")
		}
		return nil, fmt.Errorf("failed to retrieve reservation: %w", err)
	}
	return &res, nil
}

// Delete removes a reservation, allowed for its owner or staff from any
// state. It deliberately leaves rooms.is_available untouched: deleting a
// checked-in reservation keeps the room flagged unavailable until an explicit
// room update, matching the system this replaces.
func (s *ReservationService) Delete(reservationID, userID uint, isStaff bool) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.First(&res, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return makeErr(ErrNotFound, "reservation not found")
			}
			return fmt.Errorf("failed to load reservation: %w", err)
		}
		if err := authorizeOwner(res, userID, isStaff); err != nil {
			return err
		}
		if err := tx.Delete(&res).Error; err != nil {
			return fmt.Errorf("failed to delete reservation: %w", err)
		}
		return nil
	})
}

// CheckIn transitions Booked -> CheckedIn: stamps date_checkin once and marks
// the room unavailable. Allowed for the reservation's owner or staff.
func (s *ReservationService) CheckIn(reservationID, userID uint, isStaff bool) (*models.Reservation, error) {
	var res models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&res, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return makeErr(ErrNotFound, "reservation not found")
			}
			return fmt.Errorf("failed to load reservation: %w", err)
		}
		if err := authorizeOwner(res, userID, isStaff); err != nil {
			return err
		}

		available, err := applyCheckIn(&res, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := tx.Model(&res).Update("date_checkin", res.DateCheckIn).Error; err != nil {
			return fmt.Errorf("failed to set check-in: %w", err)
		}
		if err := tx.Model(&models.Room{}).
			Where("id = ?", res.RoomID).
			Update("is_available", available).Error; err != nil {
			return fmt.Errorf("failed to mark room unavailable: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckOut stamps date_checkout and frees the room. Check-out is allowed on a
// reservation that was never checked in, matching the system this replaces.
func (s *ReservationService) CheckOut(reservationID, userID uint, isStaff bool) (*models.Reservation, error) {
	var res models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&res, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return makeErr(ErrNotFound, "reservation not found")
			}
			return fmt.Errorf("failed to load reservation: %w", err)
		}
		if err := authorizeOwner(res, userID, isStaff); err != nil {
			return err
		}

		available, err := applyCheckOut(&res, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := tx.Model(&res).Update("date_checkout", res.DateCheckOut).Error; err != nil {
			return fmt.Errorf("failed to set check-out: %w", err)
		}
		if err := tx.Model(&models.Room{}).
			Where("id = ?", res.RoomID).
			Update("is_available", available).Error; err != nil {
			return fmt.Errorf("failed to mark room available: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CanCheckIn validates the Booked -> CheckedIn transition.
func CanCheckIn(res models.Reservation) error {
	if res.DateCheckIn != nil {
		return makeErr(ErrAlreadyIn, "reservation already checked in")
	}
	if res.DateCheckOut != nil {
		return makeErr(ErrAlreadyOut, "reservation already checked out")
	}
	return nil
}

// CanCheckOut validates the transition to CheckedOut. A missing check-in does
// not block it.
func CanCheckOut(res models.Reservation) error {
	if res.DateCheckOut != nil {
		return makeErr(ErrAlreadyOut, "reservation already checked out")
	}
	return nil
}
