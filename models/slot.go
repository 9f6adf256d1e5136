package models

import (
	"gorm.io/gorm"
)

type Slot struct {
	gorm.Model
	SlotNum   int    `json:"slot_num" gorm:"uniqueIndex;not null"`
	StartTime string `json:"start_time"` // Format "HH:MM" in 24h
	EndTime   string `json:"end_time"`   // Format "HH:MM" in 24h
}
