package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	RoomID uint `gorm:"index;column:room_id" json:"room_id"`
	UserID uint `gorm:"index;column:user_id" json:"user_id"`

	// Half-open stay range: the bookuntil date itself is not occupied.
	DateBookFrom  time.Time  `gorm:"column:date_bookfrom" json:"date_bookfrom"`
	DateBookUntil time.Time  `gorm:"column:date_bookuntil" json:"date_bookuntil"`
	DateCheckIn   *time.Time `gorm:"column:date_checkin" json:"date_checkin,omitempty"`
	DateCheckOut  *time.Time `gorm:"column:date_checkout" json:"date_checkout,omitempty"`

	// Snapshotted at creation, never recomputed when room or amenities change.
	PaidPrice float64 `gorm:"column:paid_price" json:"paid_price"`
	Discount  float64 `gorm:"column:discount;default:0" json:"discount"`

	AmenitySnapshot datatypes.JSON `gorm:"column:amenity_snapshot" json:"amenity_snapshot,omitempty"`

	Room Room `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE" json:"room,omitempty"`
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// Active reports whether the reservation still counts toward overlap checks.
func (r Reservation) Active() bool {
	return r.DateCheckOut == nil
}
