package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
)

// BlogImage is one entry of the Images JSON column.
type BlogImage struct {
	Image            string `json:"image"`
	ImageDescription string `json:"image_description"`
}

type Blog struct {
	gorm.Model
	StaffID uint           `json:"staff_id" gorm:"not null"`
	Staff   Account        `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	Title   string         `json:"title" gorm:"not null"`
	Status  BlogStatus     `json:"status"`
	Content string         `json:"content" gorm:"type:text"`
	Images  datatypes.JSON `json:"images"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = BlogDraft
	}
	return nil
}
