package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleStaff     Role = "Staff"
	RoleTherapist Role = "Therapist"
	RoleCustomer  Role = "Customer"
)

// Valid reports whether the role is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleTherapist, RoleCustomer:
		return true
	}
	return false
}

type Account struct {
	gorm.Model
	Username string    `json:"username" gorm:"unique;not null"`
	Password string    `json:"-" gorm:"not null"`
	Email    string    `json:"email" gorm:"unique;not null"`
	Role     Role      `json:"role" gorm:"not null;default:'Customer'"`
	DOB      time.Time `json:"dob"`
	Phone    string    `json:"phone"`
	Avatar   string    `json:"avatar"`
	IsActive bool      `json:"is_active" gorm:"default:true"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.Role == "" {
		a.Role = RoleCustomer
	}
	if !a.Role.Valid() {
		return fmt.Errorf("invalid role: %s", a.Role)
	}
	return nil
}
