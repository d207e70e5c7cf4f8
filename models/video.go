package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Video struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VideoTitle string    `gorm:"size:255;not null" json:"title"`
	VideoURL   string    `gorm:"type:text;not null" json:"url"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;index" json:"courseId"`
	Course     Course    `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
