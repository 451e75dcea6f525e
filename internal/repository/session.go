package repository

import (
	"context"
	"fmt"

	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/models"
	"gorm.io/gorm"
)

// SessionRepository defines the interface for tutoring session data operations.
type SessionRepository interface {
	Create(ctx context.Context, session *models.TutoringSession) error
	FindByID(ctx context.Context, id string) (*models.TutoringSession, error)
	ListAll(ctx context.Context) ([]models.TutoringSession, error)
	ListByTutor(ctx context.Context, tutorID string) ([]models.TutoringSession, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.TutoringSession, error)
	UpdateStatus(ctx context.Context, id string, status models.ApprovalStatus, approvedBy *string) error
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new SessionRepository instance.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.TutoringSession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *sessionRepository) FindByID(ctx context.Context, id string) (*models.TutoringSession, error) {
	var session models.TutoringSession
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find session by id %s: %w", id, err)
	}
	return &session, nil
}

func (r *sessionRepository) ListAll(ctx context.Context) ([]models.TutoringSession, error) {
	var sessions []models.TutoringSession
	err := r.db.WithContext(ctx).Order("start_time DESC").Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

func (r *sessionRepository) ListByTutor(ctx context.Context, tutorID string) ([]models.TutoringSession, error) {
	var sessions []models.TutoringSession
	err := r.db.WithContext(ctx).Where("tutor_id = ?", tutorID).Order("start_time DESC").Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for tutor %s: %w", tutorID, err)
	}
	return sessions, nil
}

func (r *sessionRepository) ListByStudent(ctx context.Context, studentID string) ([]models.TutoringSession, error) {
	var sessions []models.TutoringSession
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Order("start_time DESC").Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for student %s: %w", studentID, err)
	}
	return sessions, nil
}

// UpdateStatus writes the status and approver columns of one session.
// Last write wins if two admins race on the same record.
func (r *sessionRepository) UpdateStatus(ctx context.Context, id string, status models.ApprovalStatus, approvedBy *string) error {
	err := r.db.WithContext(ctx).
		Model(&models.TutoringSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"approval_status": status,
			"approved_by":     approvedBy,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update status of session %s: %w", id, err)
	}
	return nil
}
