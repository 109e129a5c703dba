// services/admission.go
package services

import (
	"errors"
	"time"

	"hotel-reservation/models"
)

// Coded errors so controllers can map outcomes to HTTP statuses without
// string matching.

type ErrCode string

const (
	ErrZeroLengthStay ErrCode = "ZERO_LENGTH_STAY"
	ErrEndBeforeStart ErrCode = "END_BEFORE_START"
	ErrRoomConflict   ErrCode = "ROOM_CONFLICT"
	ErrUserConflict   ErrCode = "USER_CONFLICT"
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrNotOwner       ErrCode = "NOT_OWNER"
	ErrAlreadyIn      ErrCode = "ALREADY_CHECKED_IN"
	ErrAlreadyOut     ErrCode = "ALREADY_CHECKED_OUT"
)

type codedError struct {
	code    ErrCode
	message string
}

func (e codedError) Error() string { return e.message }
func (e codedError) Code() ErrCode { return e.code }

func makeErr(c ErrCode, msg string) error { return codedError{code: c, message: msg} }

// Code extracts the domain error code, or "" for infrastructure errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// IsValidation reports whether err is a user-correctable range error.
func IsValidation(err error) bool {
	c := Code(err)
	return c == ErrZeroLengthStay || c == ErrEndBeforeStart
}

// IsConflict reports whether err is an overlap rejection.
func IsConflict(err error) bool {
	c := Code(err)
	return c == ErrRoomConflict || c == ErrUserConflict
}

// Candidate is a reservation request under admission.
type Candidate struct {
	ReservationID uint // zero for a new reservation; set when editing, to exclude itself
	RoomID        uint
	UserID        uint
	BookFrom      time.Time
	BookUntil     time.Time
}

// rangesOverlap uses half-open interval semantics: touching endpoints do not
// overlap, so [Jan 1, Jan 5) and [Jan 5, Jan 10) are both admissible.
func rangesOverlap(aFrom, aUntil, bFrom, bUntil time.Time) bool {
	return aFrom.Before(bUntil) && aUntil.After(bFrom)
}

// Admit decides whether a candidate reservation may be persisted, given every
// reservation currently active (not yet checked out). It is a pure decision:
// the caller persists on nil and must run the decision and the insert inside
// one transaction.
//
// A room conflict is reported before a user conflict when both exist.
func Admit(c Candidate, active []models.Reservation) error {
	if c.BookFrom.Equal(c.BookUntil) {
		return makeErr(ErrZeroLengthStay, "zero-length stay")
	}
	if c.BookFrom.After(c.BookUntil) {
		return makeErr(ErrEndBeforeStart, "end before start")
	}

	var userConflict bool
	for _, r := range active {
		if !r.Active() {
			continue
		}
		if c.ReservationID != 0 && r.ID == c.ReservationID {
			// Editing: the reservation's own prior range never blocks it.
			continue
		}
		if !rangesOverlap(c.BookFrom, c.BookUntil, r.DateBookFrom, r.DateBookUntil) {
			continue
		}
		if r.RoomID == c.RoomID {
			return makeErr(ErrRoomConflict, "room already booked for selected dates")
		}
		if r.UserID == c.UserID {
			userConflict = true
		}
	}
	if userConflict {
		return makeErr(ErrUserConflict, "user already booked elsewhere for overlapping dates")
	}
	return nil
}
