package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"not null"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
	Image       string  `json:"image"`
}
