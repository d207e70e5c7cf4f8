package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username   string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"type:text;not null" json:"password"`
	Email      string    `gorm:"size:150;not null" json:"email"`
	TotalScore float64   `gorm:"default:0" json:"totalScore"`

	// Quan hệ
	Chapters []Chapter  `gorm:"foreignKey:UserID" json:"-"`
	Attempts []UserQuiz `gorm:"foreignKey:UserID" json:"-"`
}

// Sinh ID ở tầng app (không dùng gen_random_uuid) để chạy được trên cả sqlite khi test
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
