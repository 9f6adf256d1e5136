package models

import (
	"time"

	"gorm.io/gorm"
)

// Shift rows are hard-deleted: idx_shift_booking does not see deleted_at, so
// a soft-deleted row would keep the slot unbookable.
type Shift struct {
	gorm.Model
	SlotID        uint        `json:"slot_id" gorm:"not null;uniqueIndex:idx_shift_booking"`
	Slot          Slot        `json:"slot,omitempty" gorm:"foreignKey:SlotID"`
	TherapistID   uint        `json:"therapist_id" gorm:"not null;uniqueIndex:idx_shift_booking"`
	Therapist     Therapist   `json:"therapist,omitempty" gorm:"foreignKey:TherapistID"`
	AppointmentID uint        `json:"appointment_id"`
	Appointment   Appointment `json:"appointment,omitempty" gorm:"foreignKey:AppointmentID"`
	Date          time.Time   `json:"date" gorm:"not null;uniqueIndex:idx_shift_booking"`
	IsAvailable   bool        `json:"is_available" gorm:"default:true"`
}
