package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Chapter struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ChapterName  string    `gorm:"size:255;not null" json:"name"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User         User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	ScoreChapter float64   `gorm:"default:0" json:"score"`

	Courses []Course `gorm:"foreignKey:ChapterID" json:"-"`
	Quizzes []Quiz   `gorm:"foreignKey:ChapterID" json:"-"`
}

func (ch *Chapter) BeforeCreate(tx *gorm.DB) error {
	if ch.ID == uuid.Nil {
		ch.ID = uuid.New()
	}
	return nil
}
