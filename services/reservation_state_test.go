package services

import (
	"testing"
	"time"

	"hotel-reservation/models"
)

func TestCanCheckIn(t *testing.T) {
	now := time.Now().UTC()

	if err := CanCheckIn(models.Reservation{}); err != nil {
		t.Fatalf("fresh reservation should be checkin-able, got %v", err)
	}

	if got := Code(CanCheckIn(models.Reservation{DateCheckIn: &now})); got != ErrAlreadyIn {
		t.Fatalf("got %v; want ALREADY_CHECKED_IN", got)
	}

	if got := Code(CanCheckIn(models.Reservation{DateCheckOut: &now})); got != ErrAlreadyOut {
		t.Fatalf("got %v; want ALREADY_CHECKED_OUT", got)
	}
}

func TestCanCheckOut(t *testing.T) {
	now := time.Now().UTC()

	// Check-out without a prior check-in is allowed.
	if err := CanCheckOut(models.Reservation{}); err != nil {
		t.Fatalf("check-out without check-in should pass, got %v", err)
	}

	if err := CanCheckOut(models.Reservation{DateCheckIn: &now}); err != nil {
		t.Fatalf("checked-in reservation should be checkout-able, got %v", err)
	}

	if got := Code(CanCheckOut(models.Reservation{DateCheckOut: &now})); got != ErrAlreadyOut {
		t.Fatalf("got %v; want ALREADY_CHECKED_OUT", got)
	}
}

func TestApplyCheckIn_MarksRoomUnavailable(t *testing.T) {
	now := time.Now().UTC()
	res := models.Reservation{ID: 1, RoomID: 7}

	available, err := applyCheckIn(&res, now)
	if err != nil {
		t.Fatalf("check-in failed: %v", err)
	}
	if available {
		t.Fatal("check-in must mark the room unavailable")
	}
	if res.DateCheckIn == nil || !res.DateCheckIn.Equal(now) {
		t.Fatalf("date_checkin = %v; want %v", res.DateCheckIn, now)
	}

	// A second check-in on the same reservation must not go through.
	if _, err := applyCheckIn(&res, now); Code(err) != ErrAlreadyIn {
		t.Fatalf("got %v; want ALREADY_CHECKED_IN", err)
	}
}

func TestApplyCheckOut_MarksRoomAvailable(t *testing.T) {
	now := time.Now().UTC()
	in := now.Add(-24 * time.Hour)
	res := models.Reservation{ID: 1, RoomID: 7, DateCheckIn: &in}

	available, err := applyCheckOut(&res, now)
	if err != nil {
		t.Fatalf("check-out failed: %v", err)
	}
	if !available {
		t.Fatal("check-out must mark the room available again")
	}
	if res.DateCheckOut == nil || !res.DateCheckOut.Equal(now) {
		t.Fatalf("date_checkout = %v; want %v", res.DateCheckOut, now)
	}
	if res.Active() {
		t.Fatal("checked-out reservation must no longer count as active")
	}

	if _, err := applyCheckOut(&res, now); Code(err) != ErrAlreadyOut {
		t.Fatalf("got %v; want ALREADY_CHECKED_OUT", err)
	}
}

func TestAuthorizeOwner(t *testing.T) {
	res := models.Reservation{ID: 1, UserID: 4}

	if err := authorizeOwner(res, 4, false); err != nil {
		t.Fatalf("owner should be authorized, got %v", err)
	}
	if err := authorizeOwner(res, 9, true); err != nil {
		t.Fatalf("staff should be authorized, got %v", err)
	}
	if got := Code(authorizeOwner(res, 9, false)); got != ErrNotOwner {
		t.Fatalf("got %v; want NOT_OWNER", got)
	}
}

func TestReservationActive(t *testing.T) {
	now := time.Now().UTC()

	if !(models.Reservation{}).Active() {
		t.Fatal("reservation without checkout should be active")
	}
	if !(models.Reservation{DateCheckIn: &now}).Active() {
		t.Fatal("checked-in reservation should still be active")
	}
	if (models.Reservation{DateCheckOut: &now}).Active() {
		t.Fatal("checked-out reservation should be inactive")
	}
}
