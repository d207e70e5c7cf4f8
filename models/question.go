package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Câu hỏi luôn có đúng 4 lựa chọn cố định, không dùng bảng option riêng
type Question struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionText string    `gorm:"type:text;not null" json:"text"`
	Option1      string    `gorm:"type:text;not null" json:"option1"`
	Option2      string    `gorm:"type:text;not null" json:"option2"`
	Option3      string    `gorm:"type:text;not null" json:"option3"`
	Option4      string    `gorm:"type:text;not null" json:"option4"`
	// Đáp án đúng, không trả về cho client
	CorrectOption string    `gorm:"type:text;not null" json:"-"`
	QuizID        uuid.UUID `gorm:"type:uuid;not null;index" json:"quizId"`
	Quiz          Quiz      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
