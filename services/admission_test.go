// services/admission_test.go
package services

import (
	"testing"
	"time"

	"hotel-reservation/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeReservation(id, roomID, userID uint, from, until time.Time) models.Reservation {
	return models.Reservation{
		ID:            id,
		RoomID:        roomID,
		UserID:        userID,
		DateBookFrom:  from,
		DateBookUntil: until,
	}
}

func TestAdmit_ZeroLengthStay(t *testing.T) {
	cand := Candidate{
		RoomID:    1,
		UserID:    1,
		BookFrom:  date(2026, time.January, 1),
		BookUntil: date(2026, time.January, 1),
	}
	err := Admit(cand, nil)
	if Code(err) != ErrZeroLengthStay {
		t.Fatalf("got %v; want ZERO_LENGTH_STAY", err)
	}
	if err.Error() != "zero-length stay" {
		t.Fatalf("got message %q; want %q", err.Error(), "zero-length stay")
	}
}

func TestAdmit_EndBeforeStart(t *testing.T) {
	cand := Candidate{
		RoomID:    1,
		UserID:    1,
		BookFrom:  date(2026, time.January, 10),
		BookUntil: date(2026, time.January, 5),
	}
	err := Admit(cand, nil)
	if Code(err) != ErrEndBeforeStart {
		t.Fatalf("got %v; want END_BEFORE_START", err)
	}
	if err.Error() != "end before start" {
		t.Fatalf("got message %q; want %q", err.Error(), "end before start")
	}
}

func TestAdmit_RoomDoubleBookingRejected(t *testing.T) {
	existing := []models.Reservation{
		activeReservation(1, 7, 2, date(2026, time.January, 3), date(2026, time.January, 8)),
	}
	cand := Candidate{
		RoomID:    7,
		UserID:    1,
		BookFrom:  date(2026, time.January, 5),
		BookUntil: date(2026, time.January, 10),
	}
	err := Admit(cand, existing)
	if Code(err) != ErrRoomConflict {
		t.Fatalf("got %v; want ROOM_CONFLICT", err)
	}
	if err.Error() != "room already booked for selected dates" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestAdmit_TouchingRangesDoNotOverlap(t *testing.T) {
	// [Jan 1, Jan 5) then [Jan 5, Jan 10) on the same room: both admissible.
	existing := []models.Reservation{
		activeReservation(1, 7, 1, date(2026, time.January, 1), date(2026, time.January, 5)),
	}
	cand := Candidate{
		RoomID:    7,
		UserID:    2,
		BookFrom:  date(2026, time.January, 5),
		BookUntil: date(2026, time.January, 10),
	}
	if err := Admit(cand, existing); err != nil {
		t.Fatalf("touching ranges should be admitted, got %v", err)
	}
}

func TestAdmit_UserConflictElsewhere(t *testing.T) {
	// Same user already holds room 9 over these dates; candidate wants room 7.
	existing := []models.Reservation{
		activeReservation(1, 9, 4, date(2026, time.February, 1), date(2026, time.February, 5)),
	}
	cand := Candidate{
		RoomID:    7,
		UserID:    4,
		BookFrom:  date(2026, time.February, 3),
		BookUntil: date(2026, time.February, 6),
	}
	err := Admit(cand, existing)
	if Code(err) != ErrUserConflict {
		t.Fatalf("got %v; want USER_CONFLICT", err)
	}
	if err.Error() != "user already booked elsewhere for overlapping dates" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestAdmit_RoomConflictReportedBeforeUserConflict(t *testing.T) {
	// Both a room conflict (other user, same room) and a user conflict
	// (same user, other room) exist; the room conflict must win.
	existing := []models.Reservation{
		activeReservation(1, 9, 4, date(2026, time.March, 1), date(2026, time.March, 10)),
		activeReservation(2, 7, 8, date(2026, time.March, 1), date(2026, time.March, 10)),
	}
	cand := Candidate{
		RoomID:    7,
		UserID:    4,
		BookFrom:  date(2026, time.March, 3),
		BookUntil: date(2026, time.March, 6),
	}
	if got := Code(Admit(cand, existing)); got != ErrRoomConflict {
		t.Fatalf("got %v; want ROOM_CONFLICT to take precedence", got)
	}
}

func TestAdmit_ExcludesSelfOnEdit(t *testing.T) {
	existing := []models.Reservation{
		activeReservation(42, 7, 4, date(2026, time.April, 1), date(2026, time.April, 5)),
	}
	// Re-submitting reservation 42 with unchanged dates must not self-reject.
	cand := Candidate{
		ReservationID: 42,
		RoomID:        7,
		UserID:        4,
		BookFrom:      date(2026, time.April, 1),
		BookUntil:     date(2026, time.April, 5),
	}
	if err := Admit(cand, existing); err != nil {
		t.Fatalf("edit against itself should be admitted, got %v", err)
	}
}

func TestAdmit_CheckedOutReservationsIgnored(t *testing.T) {
	out := date(2026, time.May, 4)
	existing := []models.Reservation{
		{
			ID:            1,
			RoomID:        7,
			UserID:        2,
			DateBookFrom:  date(2026, time.May, 1),
			DateBookUntil: date(2026, time.May, 10),
			DateCheckOut:  &out,
		},
	}
	cand := Candidate{
		RoomID:    7,
		UserID:    3,
		BookFrom:  date(2026, time.May, 2),
		BookUntil: date(2026, time.May, 6),
	}
	if err := Admit(cand, existing); err != nil {
		t.Fatalf("checked-out reservation must not block, got %v", err)
	}
}

func TestAdmit_ErrorClassification(t *testing.T) {
	if !IsValidation(makeErr(ErrZeroLengthStay, "zero-length stay")) {
		t.Fatal("ZERO_LENGTH_STAY should classify as validation")
	}
	if !IsValidation(makeErr(ErrEndBeforeStart, "end before start")) {
		t.Fatal("END_BEFORE_START should classify as validation")
	}
	if !IsConflict(makeErr(ErrRoomConflict, "x")) || !IsConflict(makeErr(ErrUserConflict, "x")) {
		t.Fatal("overlap codes should classify as conflict")
	}
	if Code(nil) != "" {
		t.Fatal("nil error should have empty code")
	}
}
