package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseName string    `gorm:"size:255;not null" json:"name"`
	ChapterID  uuid.UUID `gorm:"type:uuid;not null;index" json:"chapterId"`
	Chapter    Chapter   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Videos []Video `gorm:"foreignKey:CourseID" json:"-"`
}

func (co *Course) BeforeCreate(tx *gorm.DB) error {
	if co.ID == uuid.Nil {
		co.ID = uuid.New()
	}
	return nil
}
