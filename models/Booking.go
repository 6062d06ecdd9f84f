package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking is a reservation of a listing by a renter for a date range.
// StartDate must precede EndDate; TotalPrice is a non-negative decimal string.
type Booking struct {
	gorm.Model
	RenterUsername string    `json:"renterUsername" gorm:"size:256;index;not null"`
	ListingID      uint      `json:"listingID" gorm:"index;not null"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	TotalPrice     string    `json:"totalPrice" gorm:"size:32"`

	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	Renter  *User    `json:"renter,omitempty" gorm:"foreignKey:RenterUsername;references:Username"`
}
