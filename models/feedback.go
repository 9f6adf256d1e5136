package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Feedback struct {
	gorm.Model
	AccountID     uint           `json:"account_id" gorm:"not null"`
	Account       Account        `json:"account,omitempty" gorm:"foreignKey:AccountID"`
	AppointmentID uint           `json:"appointment_id" gorm:"not null"`
	Appointment   Appointment    `json:"appointment,omitempty" gorm:"foreignKey:AppointmentID"`
	ServiceID     uint           `json:"service_id" gorm:"not null"`
	Service       Service        `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	TherapistID   uint           `json:"therapist_id" gorm:"not null"`
	Therapist     Therapist      `json:"therapist,omitempty" gorm:"foreignKey:TherapistID"`
	Comment       string         `json:"comment"`
	Rating        float64        `json:"rating" gorm:"type:decimal(2,1);not null"`
	Images        datatypes.JSON `json:"images"`
}

// BeforeCreate hook to validate rating
func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	// Ensure rating is between 1.0 and 5.0
	if f.Rating < 1.0 {
		f.Rating = 1.0
	} else if f.Rating > 5.0 {
		f.Rating = 5.0
	}
	return nil
}
