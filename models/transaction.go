package models

import (
	"gorm.io/gorm"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// PaymentMethod is a seeded lookup table; transactions reference it by name.
type PaymentMethod struct {
	gorm.Model
	Name     string `json:"name" gorm:"unique;not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

type Transaction struct {
	gorm.Model
	CustomerID    uint              `json:"customer_id" gorm:"not null"`
	Customer      Account           `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	AppointmentID uint              `json:"appointment_id" gorm:"not null"`
	Appointment   Appointment       `json:"appointment,omitempty" gorm:"foreignKey:AppointmentID"`
	PaymentMethod string            `json:"payment_method" gorm:"not null"`
	Status        TransactionStatus `json:"status"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = TransactionPending
	}
	return nil
}
