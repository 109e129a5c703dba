// services/reservation_service_test.go
package services

import (
	"encoding/json"
	"testing"
	"time"

	"hotel-reservation/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestRepriceReservation_RefreshesSnapshot(t *testing.T) {
	staleSnapshot, err := json.Marshal([]amenityLine{{ID: 1, Name: "Breakfast", Fee: 200}})
	require.NoError(t, err)

	res := models.Reservation{
		ID:              1,
		RoomID:          7,
		UserID:          4,
		DateBookFrom:    date(2026, time.July, 1),
		DateBookUntil:   date(2026, time.July, 3),
		PaidPrice:       2400, // (1000 + 200) x 2 nights at creation time
		AmenitySnapshot: datatypes.JSON(staleSnapshot),
	}

	// The room has since lost Breakfast and gained Sea View.
	room := models.Room{
		BasePrice: 1000,
		Amenities: []models.Amenity{{Name: "Sea View", Fee: 500}},
	}
	room.ID = 7

	err = repriceReservation(&res, room, date(2026, time.July, 1), date(2026, time.July, 4))
	require.NoError(t, err)

	// (1000 + 500) x 3 nights, and the snapshot explains it.
	require.EqualValues(t, 4500, res.PaidPrice)
	require.Equal(t, date(2026, time.July, 4), res.DateBookUntil)

	var lines []amenityLine
	require.NoError(t, json.Unmarshal([]byte(res.AmenitySnapshot), &lines))
	require.Len(t, lines, 1)
	require.Equal(t, "Sea View", lines[0].Name)
	require.EqualValues(t, 500, lines[0].Fee)
}

func TestSnapshotAmenities_EmptySet(t *testing.T) {
	snapshot, err := snapshotAmenities(models.Room{BasePrice: 750})
	require.NoError(t, err)
	require.JSONEq(t, "[]", string(snapshot))
}
