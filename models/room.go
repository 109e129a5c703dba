package models

import (
	"gorm.io/gorm"
)

// Room types kept as string codes the way the frontend sends them.
const (
	RoomTypeStandard = "Standard"
	RoomTypeDeluxe   = "Deluxe"
	RoomTypeSuite    = "Suite"
)

type Room struct {
	gorm.Model

	Type      string  `json:"type" gorm:"size:50"`
	BasePrice float64 `json:"basePrice" gorm:"column:base_price"`
	Capacity  int     `json:"capacity"`

	// Mutated by reservation check-in/check-out, not directly by clients.
	IsAvailable bool `json:"isAvailable" gorm:"column:is_available;default:true"`

	Image       string `json:"image" gorm:"size:255"`
	Description string `json:"description" gorm:"type:text"`

	Amenities []Amenity `gorm:"many2many:room_amenities" json:"amenities"`
}

// UnitPrice is the per-night price: base price plus every attached amenity fee.
func (r Room) UnitPrice() float64 {
	price := r.BasePrice
	for _, a := range r.Amenities {
		price += a.Fee
	}
	return price
}
