package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Certification is a single professional certificate held by a therapist.
type Certification struct {
	Name       string    `json:"name"`
	IssuedBy   string    `json:"issued_by"`
	IssuedDate time.Time `json:"issued_date"`
	FileURL    string    `json:"file_url,omitempty"`
}

type CertificationList []Certification

// Value implements the driver.Valuer interface
func (l CertificationList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *CertificationList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal CertificationList: unsupported type %T", value)
	}

	return json.Unmarshal(data, l)
}

type Therapist struct {
	gorm.Model
	// AccountID is immutable after creation; updates never touch it.
	AccountID      uint              `json:"account_id" gorm:"uniqueIndex;not null"`
	Account        Account           `json:"account,omitempty" gorm:"foreignKey:AccountID"`
	Specialization []Service         `json:"specialization,omitempty" gorm:"many2many:therapist_specializations;"`
	Certifications CertificationList `json:"certifications" gorm:"type:text"`
	Experience     int               `json:"experience"` // years
}
