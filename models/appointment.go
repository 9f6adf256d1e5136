package models

import (
	"fmt"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCheckedIn AppointmentStatus = "CheckedIn"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

type Appointment struct {
	gorm.Model
	TherapistID   uint              `json:"therapist_id" gorm:"not null"`
	Therapist     Therapist         `json:"therapist,omitempty" gorm:"foreignKey:TherapistID"`
	CustomerID    uint              `json:"customer_id" gorm:"not null"`
	Customer      Account           `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ServiceID     uint              `json:"service_id" gorm:"not null"`
	Service       Service           `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	SlotID        uint              `json:"slot_id" gorm:"not null"`
	Slot          Slot              `json:"slot,omitempty" gorm:"foreignKey:SlotID"`
	CheckInImage  string            `json:"check_in_image"`
	CheckOutImage string            `json:"check_out_image"`
	Notes         string            `json:"notes"`
	Amount        float64           `json:"amount"` // snapshot of Service.Price at booking time
	Status        AppointmentStatus `json:"status"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	return nil
}

// UpdateStatus enforces the appointment lifecycle:
// Scheduled -> CheckedIn or Cancelled, CheckedIn -> Completed or Cancelled.
// Completed and Cancelled are terminal.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusScheduled:
		if newStatus != StatusCheckedIn && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from %s to %s", a.Status, newStatus)
		}
	case StatusCheckedIn:
		if newStatus != StatusCompleted && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from %s to %s", a.Status, newStatus)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}

	a.Status = newStatus
	return tx.Save(a).Error
}
