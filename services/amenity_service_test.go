package services

import (
	"testing"

	"hotel-reservation/models"

	"github.com/stretchr/testify/require"
)

func TestAmenityColumns_WriteZeroFee(t *testing.T) {
	// Updating via a struct would skip the zero value and keep the old fee.
	cols := amenityColumns(&models.Amenity{Name: "WiFi", Fee: 0})

	require.Contains(t, cols, "fee")
	require.EqualValues(t, 0, cols["fee"])
	require.Equal(t, "WiFi", cols["name"])
}

func TestRoomColumns_WriteZeroValues(t *testing.T) {
	cols := roomColumns(&models.Room{Type: models.RoomTypeStandard, BasePrice: 0, Capacity: 2})

	require.Contains(t, cols, "base_price")
	require.EqualValues(t, 0, cols["base_price"])
	require.Contains(t, cols, "description")
	require.Equal(t, "", cols["description"])
}

func TestRoomColumns_NeverTouchAvailability(t *testing.T) {
	// is_available is a check-in/check-out side effect, not a client field.
	cols := roomColumns(&models.Room{IsAvailable: false})
	require.NotContains(t, cols, "is_available")
}
