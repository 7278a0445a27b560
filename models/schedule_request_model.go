package models

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestRequested  RequestStatus = "requested"
	RequestReproposed RequestStatus = "reproposed"
	RequestRejected   RequestStatus = "rejected"
	RequestConfirmed  RequestStatus = "confirmed"
)

// CanTransitionTo reports whether a request may move to the target status.
// rejected and confirmed are terminal; repropose is only reachable from
// requested.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	switch s {
	case RequestRequested:
		return target == RequestReproposed || target == RequestRejected || target == RequestConfirmed
	case RequestReproposed:
		return target == RequestRejected || target == RequestConfirmed
	case RequestRejected, RequestConfirmed:
		return false
	}
	return false
}

func (s RequestStatus) IsTerminal() bool {
	return s == RequestRejected || s == RequestConfirmed
}

type ScheduleRequest struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID   uuid.UUID     `gorm:"not null" json:"student_id"`
	RequestedBy uuid.UUID     `gorm:"not null" json:"requested_by"`
	Date        time.Time     `gorm:"type:date;not null" json:"date"`
	StartTime   string        `gorm:"size:5;not null" json:"start_time"`
	EndTime     string        `gorm:"size:5;not null" json:"end_time"`
	Location    *string       `gorm:"size:255" json:"location"`
	Status      RequestStatus `gorm:"size:20;not null;default:'requested'" json:"status"`
	Message     *string       `gorm:"type:text" json:"message,omitempty"`

	// Set when the request draws on a makeup credit instead of being billed.
	MakeupCreditID *uuid.UUID `json:"makeup_credit_id,omitempty"`

	// Counter-proposal from the teacher; populated on repropose.
	ProposedDate      *time.Time `gorm:"type:date" json:"proposed_date,omitempty"`
	ProposedStartTime *string    `gorm:"size:5" json:"proposed_start_time,omitempty"`
	ProposedEndTime   *string    `gorm:"size:5" json:"proposed_end_time,omitempty"`

	Student      Student       `gorm:"foreignkey:StudentID" json:"-"`
	Requester    User          `gorm:"foreignkey:RequestedBy" json:"-"`
	MakeupCredit *MakeupCredit `gorm:"foreignkey:MakeupCreditID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveSlot returns the slot the lesson will occupy if the request is
// confirmed: the teacher's counter-proposal when present, otherwise the
// originally requested slot.
func (r *ScheduleRequest) EffectiveSlot() (time.Time, string, string) {
	if r.Status == RequestReproposed && r.ProposedDate != nil && r.ProposedStartTime != nil && r.ProposedEndTime != nil {
		return *r.ProposedDate, *r.ProposedStartTime, *r.ProposedEndTime
	}
	return r.Date, r.StartTime, r.EndTime
}
