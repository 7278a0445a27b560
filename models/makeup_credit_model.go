package models

import (
	"time"

	"github.com/google/uuid"
)

type MakeupCredit struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID    uuid.UUID `gorm:"not null" json:"student_id"`
	TotalMinutes int       `gorm:"not null" json:"total_minutes"`
	UsedMinutes  int       `gorm:"not null;default:0" json:"used_minutes"`
	ExpiresAt    time.Time `gorm:"type:date;not null" json:"expires_at"`
	LessonID     uuid.UUID `gorm:"not null" json:"lesson_id"`

	Student Student `gorm:"foreignkey:StudentID" json:"-"`
	Lesson  Lesson  `gorm:"foreignkey:LessonID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *MakeupCredit) RemainingMinutes() int {
	return m.TotalMinutes - m.UsedMinutes
}
