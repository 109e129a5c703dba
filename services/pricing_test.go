package services

import (
	"testing"
	"time"

	"hotel-reservation/models"
)

func TestNights(t *testing.T) {
	cases := []struct {
		name        string
		from, until time.Time
		want        int
	}{
		{"one night", date(2026, time.January, 1), date(2026, time.January, 2), 1},
		{"three nights", date(2026, time.January, 1), date(2026, time.January, 4), 3},
		{"across month end", date(2026, time.January, 30), date(2026, time.February, 2), 3},
	}
	for _, tc := range cases {
		if got := Nights(tc.from, tc.until); got != tc.want {
			t.Errorf("%s: Nights = %d; want %d", tc.name, got, tc.want)
		}
	}
}

func TestTotalPrice_WithAmenity(t *testing.T) {
	room := models.Room{
		BasePrice: 1000,
		Amenities: []models.Amenity{{Name: "Breakfast", Fee: 200}},
	}
	total := TotalPrice(room, date(2026, time.January, 1), date(2026, time.January, 4))
	if total != 3600 {
		t.Fatalf("total = %v; want 3600 (1200 x 3 nights)", total)
	}
}

func TestTotalPrice_NoAmenities(t *testing.T) {
	room := models.Room{BasePrice: 750}
	if room.UnitPrice() != room.BasePrice {
		t.Fatalf("unit price without amenities = %v; want base price %v", room.UnitPrice(), room.BasePrice)
	}
	total := TotalPrice(room, date(2026, time.June, 1), date(2026, time.June, 2))
	if total != 750 {
		t.Fatalf("total = %v; want 750 for a one-night stay", total)
	}
}

func TestUnitPrice_SumsAllFees(t *testing.T) {
	room := models.Room{
		BasePrice: 500,
		Amenities: []models.Amenity{
			{Name: "WiFi", Fee: 0},
			{Name: "Minibar", Fee: 200},
			{Name: "Sea View", Fee: 500},
		},
	}
	if got := room.UnitPrice(); got != 1200 {
		t.Fatalf("unit price = %v; want 1200", got)
	}
}
