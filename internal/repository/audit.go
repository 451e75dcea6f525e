package repository

import (
	"context"
	"fmt"

	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/models"
	"gorm.io/gorm"
)

// AuditRepository defines the interface for the append-only audit log.
// Entries are only ever inserted and read, never updated or deleted.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.SessionAudit) error
	List(ctx context.Context, sessionID string) ([]models.SessionAudit, error)
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new AuditRepository instance.
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, entry *models.SessionAudit) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}

// List returns audit entries newest first, filtered to one session when
// sessionID is non-empty.
func (r *auditRepository) List(ctx context.Context, sessionID string) ([]models.SessionAudit, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if sessionID != "" {
		query = query.Where("session_id = ?", sessionID)
	}

	var entries []models.SessionAudit
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
