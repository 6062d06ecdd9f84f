package models

import (
	"gorm.io/gorm"
)

// ListingPhoto is one stored image attached to a listing. Photos are
// returned in ascending insertion order.
type ListingPhoto struct {
	gorm.Model
	ListingID uint   `json:"listingID" gorm:"index;not null"`
	ImageURL  string `json:"imageURL" gorm:"size:512;not null"`
}
