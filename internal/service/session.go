package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/models"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxNotesLength bounds the optional notes field of a submission.
const maxNotesLength = 1000

// SubmitSessionInput carries a validated session submission. Times are
// already parsed by the boundary; the invariants are re-checked here.
type SubmitSessionInput struct {
	TutorName   string
	StudentName string
	Subject     string
	StartTime   time.Time
	EndTime     time.Time
	Notes       string
}

// SessionService drives the approval workflow: submission, role-scoped
// listing, the status state machine and the audit trail.
type SessionService interface {
	Submit(ctx context.Context, caller *Claims, input SubmitSessionInput) (*models.TutoringSession, error)
	List(ctx context.Context, caller *Claims) ([]models.TutoringSession, error)
	ChangeStatus(ctx context.Context, caller *Claims, sessionID string, status models.ApprovalStatus) (*models.TutoringSession, error)
	ListAudits(ctx context.Context, sessionID string) ([]models.SessionAudit, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	auditRepo   repository.AuditRepository
	logger      *slog.Logger
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(sessionRepo repository.SessionRepository, auditRepo repository.AuditRepository, logger *slog.Logger) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		auditRepo:   auditRepo,
		logger:      logger,
	}
}

// Submit validates the input, fills the caller's side of the record from the
// token claims and creates the session as pending. No audit entry is written
// here; the audit trail only tracks transitions away from the created state.
func (s *sessionService) Submit(ctx context.Context, caller *Claims, input SubmitSessionInput) (*models.TutoringSession, error) {
	if strings.TrimSpace(input.Subject) == "" {
		return nil, &ValidationError{Field: "subject", Message: "subject must not be empty"}
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, &ValidationError{Field: "endTime", Message: "end time must be after start time"}
	}
	if len(input.Notes) > maxNotesLength {
		return nil, &ValidationError{Field: "notes", Message: fmt.Sprintf("notes must be at most %d characters", maxNotesLength)}
	}

	tutorName := strings.TrimSpace(input.TutorName)
	studentName := strings.TrimSpace(input.StudentName)

	var tutorID, studentID *string
	switch caller.Role {
	case models.RoleTutor:
		id := caller.UserID()
		tutorID = &id
		if tutorName == "" {
			tutorName = caller.FullName
		}
	case models.RoleStudent:
		id := caller.UserID()
		studentID = &id
		if studentName == "" {
			studentName = caller.FullName
		}
	default:
		return nil, fmt.Errorf("role %q cannot submit sessions", caller.Role)
	}

	if tutorName == "" {
		return nil, &ValidationError{Field: "tutorName", Message: "tutor name is required"}
	}
	if studentName == "" {
		return nil, &ValidationError{Field: "studentName", Message: "student name is required"}
	}

	session := &models.TutoringSession{
		ID:             uuid.NewString(),
		TutorID:        tutorID,
		TutorName:      tutorName,
		StudentID:      studentID,
		StudentName:    studentName,
		Subject:        strings.TrimSpace(input.Subject),
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		Notes:          input.Notes,
		ApprovalStatus: models.StatusPending,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("session submitted", "session_id", session.ID, "subject", session.Subject)
	return session, nil
}

// List returns the caller's visibility partition, newest start time first.
// The filter is applied here, never left to the client.
func (s *sessionService) List(ctx context.Context, caller *Claims) ([]models.TutoringSession, error) {
	switch caller.Role {
	case models.RoleAdmin:
		return s.sessionRepo.ListAll(ctx)
	case models.RoleTutor:
		return s.sessionRepo.ListByTutor(ctx, caller.UserID())
	case models.RoleStudent:
		return s.sessionRepo.ListByStudent(ctx, caller.UserID())
	default:
		return nil, fmt.Errorf("unknown role %q", caller.Role)
	}
}

// ChangeStatus drives the approval state machine. A request for the current
// status is a no-op that writes no audit entry, which makes repeated
// identical requests idempotent. On an effective change the record is
// updated first and exactly one audit entry is appended afterwards; a failed
// audit append is logged but never rolls back or fails the status update.
func (s *sessionService) ChangeStatus(ctx context.Context, caller *Claims, sessionID string, status models.ApprovalStatus) (*models.TutoringSession, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	oldStatus := session.ApprovalStatus
	if oldStatus == status {
		return session, nil
	}

	var approvedBy *string
	if status != models.StatusPending {
		adminID := caller.UserID()
		approvedBy = &adminID
	}

	if err := s.sessionRepo.UpdateStatus(ctx, sessionID, status, approvedBy); err != nil {
		return nil, err
	}

	entry := &models.SessionAudit{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ChangedBy: caller.UserID(),
		OldStatus: oldStatus,
		NewStatus: status,
	}
	// The status update has committed; a client disconnect must not cancel
	// the audit append.
	if err := s.auditRepo.Create(context.WithoutCancel(ctx), entry); err != nil {
		// The committed status update is the source of truth; losing one
		// audit entry is tolerated rather than failing the request.
		s.logger.Error("failed to record audit entry",
			"session_id", sessionID, "old_status", oldStatus, "new_status", status, "error", err)
	}

	s.logger.Info("session status changed",
		"session_id", sessionID, "old_status", oldStatus, "new_status", status, "changed_by", caller.UserID())

	session.ApprovalStatus = status
	session.ApprovedBy = approvedBy
	return session, nil
}

// ListAudits returns audit entries newest first, optionally filtered by
// session id.
func (s *sessionService) ListAudits(ctx context.Context, sessionID string) ([]models.SessionAudit, error) {
	return s.auditRepo.List(ctx, sessionID)
}
