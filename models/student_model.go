package models

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeacherID  uuid.UUID  `gorm:"not null" json:"teacher_id"`
	ParentID   *uuid.UUID `json:"parent_id"`
	Name       string     `gorm:"size:255;not null" json:"name"`
	HourlyRate int        `gorm:"not null" json:"hourly_rate"`
	Location   *string    `gorm:"size:255" json:"location"`
	InviteCode *string    `gorm:"size:10;unique" json:"invite_code,omitempty"`
	IsActive   bool       `gorm:"default:true" json:"is_active"`

	Teacher User  `gorm:"foreignkey:TeacherID" json:"-"`
	Parent  *User `gorm:"foreignkey:ParentID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
