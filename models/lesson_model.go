package models

import (
	"time"

	"github.com/google/uuid"
)

type LessonStatus string

const (
	LessonPlanned   LessonStatus = "planned"
	LessonDone      LessonStatus = "done"
	LessonCancelled LessonStatus = "cancelled"
)

// CanTransitionTo reports whether a lesson may move from its current status
// to the target. done and cancelled are terminal.
func (s LessonStatus) CanTransitionTo(target LessonStatus) bool {
	switch s {
	case LessonPlanned:
		return target == LessonDone || target == LessonCancelled
	case LessonDone, LessonCancelled:
		return false
	}
	return false
}

func (s LessonStatus) IsTerminal() bool {
	return s == LessonDone || s == LessonCancelled
}

type Lesson struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID    uuid.UUID    `gorm:"not null" json:"student_id"`
	Date         time.Time    `gorm:"type:date;not null" json:"date"`
	StartTime    string       `gorm:"size:5;not null" json:"start_time"`
	EndTime      string       `gorm:"size:5;not null" json:"end_time"`
	Hours        float64      `gorm:"type:numeric(4,2);not null" json:"hours"`
	Amount       int          `gorm:"not null" json:"amount"`
	TransportFee int          `gorm:"not null;default:0" json:"transport_fee"`
	Status       LessonStatus `gorm:"size:20;not null;default:'planned'" json:"status"`
	IsMakeup     bool         `gorm:"not null;default:false" json:"is_makeup"`
	Memo         *string      `gorm:"type:text" json:"memo,omitempty"`
	Homework     *string      `gorm:"type:text" json:"homework,omitempty"`

	Student Student `gorm:"foreignkey:StudentID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Billable lessons are the only ones the monthly statement counts:
// still planned and not a makeup session.
func (l *Lesson) Billable() bool {
	return l.Status == LessonPlanned && !l.IsMakeup
}

// DurationMinutes is the scheduled length of the lesson in whole minutes.
func (l *Lesson) DurationMinutes() int {
	return int(l.Hours*60 + 0.5)
}
