package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation ties the two roles around one student together: the teacher
// and the student's parent. StudentID scopes the thread so a parent with
// several children gets one thread per child.
type Conversation struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID *uuid.UUID `json:"student_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Participants []*User   `gorm:"many2many:conversation_participants;" json:"participants,omitempty"`
	Messages     []Message `json:"-"`
}
