package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Answer is one selectable option of a quiz question, worth Point points.
type Answer struct {
	Content string `json:"content"`
	Point   int    `json:"point"`
}

type AnswerList []Answer

// Value implements the driver.Valuer interface
func (l AnswerList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *AnswerList) Scan(value interface{}) error {
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
		return fmt.Errorf("failed to unmarshal AnswerList: unsupported type %T", value)
	}

	return json.Unmarshal(data, l)
}

type Question struct {
	gorm.Model
	Content string     `json:"content" gorm:"not null"`
	Answers AnswerList `json:"answers" gorm:"type:text"`
}

// Scoreband maps a total-point range to a skin type and its roadmap.
type Scoreband struct {
	gorm.Model
	MinPoint        int     `json:"min_point" gorm:"not null"`
	MaxPoint        int     `json:"max_point" gorm:"not null"`
	TypeOfSkin      string  `json:"type_of_skin" gorm:"not null"`
	SkinExplanation string  `json:"skin_explanation"`
	RoadmapID       uint    `json:"roadmap_id"`
	Roadmap         Roadmap `json:"roadmap,omitempty" gorm:"foreignKey:RoadmapID"`
}

// Roadmap is a recommended bundle of services for a skin type.
type Roadmap struct {
	gorm.Model
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Services    []Service `json:"services,omitempty" gorm:"many2many:roadmap_services;"`
}

type UserQuiz struct {
	gorm.Model
	AccountID   uint           `json:"account_id" gorm:"not null"`
	Account     Account        `json:"account,omitempty" gorm:"foreignKey:AccountID"`
	ScorebandID uint           `json:"scoreband_id"`
	Scoreband   Scoreband      `json:"scoreband,omitempty" gorm:"foreignKey:ScorebandID"`
	TotalPoint  int            `json:"total_point"`
	Details     datatypes.JSON `json:"details"` // submitted answers, kept for review
}
