package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"size:256;uniqueIndex;not null"`
	Email    string `json:"email" gorm:"size:256;uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	ImageURL string `json:"imageURL"`

	// Children reference users by username rather than a surrogate id;
	// username uniqueness is the binding invariant.
	Listings         []Listing `json:"listings,omitempty" gorm:"foreignKey:OwnerUsername;references:Username;constraint:OnDelete:CASCADE"`
	Bookings         []Booking `json:"bookings,omitempty" gorm:"foreignKey:RenterUsername;references:Username;constraint:OnDelete:CASCADE"`
	SentMessages     []Message `json:"-" gorm:"foreignKey:FromUsername;references:Username;constraint:OnDelete:CASCADE"`
	ReceivedMessages []Message `json:"-" gorm:"foreignKey:ToUsername;references:Username;constraint:OnDelete:CASCADE"`
}
