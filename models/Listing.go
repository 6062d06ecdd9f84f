package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

type Listing struct {
	gorm.Model
	Title         string `json:"title" gorm:"not null"`
	Price         string `json:"price" gorm:"size:32;not null"` // normalized decimal string, never a float
	Description   string `json:"description"`
	Location      string `json:"location"`
	OwnerUsername string `json:"owner" gorm:"size:256;index;not null"`

	Photos   []ListingPhoto `json:"photos" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Bookings []Booking      `json:"-" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Owner    *User          `json:"-" gorm:"foreignKey:OwnerUsername;references:Username"`
}

// Custom JSON marshaling so the photo list is never null.
func (l *Listing) MarshalJSON() ([]byte, error) {
	type Alias Listing
	aux := &struct {
		Photos []ListingPhoto `json:"photos"`
		*Alias
	}{
		Photos: []ListingPhoto{},
		Alias:  (*Alias)(l),
	}

	if l.Photos != nil {
		aux.Photos = l.Photos
	}

	return json.Marshal(aux)
}
