package models

import (
	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	Text         string `json:"text" gorm:"not null"`
	FromUsername string `json:"fromUsername" gorm:"size:256;index;not null"`
	ToUsername   string `json:"toUsername" gorm:"size:256;index;not null"`
}
