package models

import "time"

// ApprovalStatus is the state of a tutoring session submission.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// Valid reports whether s is one of the known approval statuses.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// TutoringSession represents one submitted tutoring session. Exactly one of
// TutorID/StudentID holds the submitter's user id; the other party is known
// by name only and does not need an account.
type TutoringSession struct {
	ID             string         `json:"id" gorm:"type:uuid;primaryKey"`
	TutorID        *string        `json:"tutor_id" gorm:"type:uuid"`
	TutorName      string         `json:"tutor_name" gorm:"not null"`
	StudentID      *string        `json:"student_id" gorm:"type:uuid"`
	StudentName    string         `json:"student_name" gorm:"not null"`
	Subject        string         `json:"subject" gorm:"not null"`
	StartTime      time.Time      `json:"start_time" gorm:"not null"`
	EndTime        time.Time      `json:"end_time" gorm:"not null"`
	Notes          string         `json:"notes,omitempty"`
	ApprovalStatus ApprovalStatus `json:"approval_status" gorm:"type:text;not null;default:pending"`
	ApprovedBy     *string        `json:"approved_by" gorm:"type:uuid"`
	CreatedAt      time.Time      `json:"created_at"`
}

// TableName returns the database table name for the TutoringSession model.
func (TutoringSession) TableName() string {
	return "tutoring_sessions"
}
