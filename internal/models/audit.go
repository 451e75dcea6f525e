package models

import "time"

// SessionAudit is an append-only record of one approval status transition.
// Rows are written once and never updated or deleted.
type SessionAudit struct {
	ID        string         `json:"id" gorm:"type:uuid;primaryKey"`
	SessionID string         `json:"session_id" gorm:"type:uuid;not null;index"`
	ChangedBy string         `json:"changed_by" gorm:"type:uuid;not null"`
	OldStatus ApprovalStatus `json:"old_status" gorm:"type:text;not null"`
	NewStatus ApprovalStatus `json:"new_status" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
}

// TableName returns the database table name for the SessionAudit model.
func (SessionAudit) TableName() string {
	return "tutoring_session_audit"
}
