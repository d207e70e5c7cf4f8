package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Quiz struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizTitle string    `gorm:"size:255;not null" json:"title"`
	ChapterID uuid.UUID `gorm:"type:uuid;not null;index" json:"chapterId"`
	Chapter   Chapter   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Questions []Question `gorm:"foreignKey:QuizID" json:"-"`
}

func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
