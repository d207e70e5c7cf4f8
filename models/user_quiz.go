package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserQuiz là log một lần nộp bài, chỉ insert thêm, không update bản ghi cũ
type UserQuiz struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User    User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	QuizID  uuid.UUID `gorm:"type:uuid;not null;index" json:"quizId"`
	Quiz    Quiz      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Score   float64   `gorm:"type:numeric(5,2)" json:"score"`
	TakenAt time.Time `gorm:"autoCreateTime" json:"takenAt"`
}

func (uq *UserQuiz) BeforeCreate(tx *gorm.DB) error {
	if uq.ID == uuid.Nil {
		uq.ID = uuid.New()
	}
	return nil
}
