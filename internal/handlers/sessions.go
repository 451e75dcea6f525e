package handlers

import (
	"net/http"
	"time"

	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/middleware"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/models"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/service"
	"github.com/gin-gonic/gin"
)

// SessionHandler handles tutoring session HTTP requests.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler instance.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// CreateSessionRequest represents a session submission payload. The caller's
// own side of the record is derived from the token; only the counter-party
// name is required in the body.
type CreateSessionRequest struct {
	TutorName   string `json:"tutorName"`
	StudentName string `json:"studentName"`
	Subject     string `json:"subject" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	Notes       string `json:"notes" binding:"max=1000"`
}

// ChangeStatusRequest represents a status change payload.
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Submit godoc
// @Summary Submit a tutoring session
// @Description Create a pending session record; restricted to tutors and students
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSessionRequest true "Session details"
// @Success 201 {object} models.TutoringSession
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /sessions [post]
func (h *SessionHandler) Submit(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		respondValidationError(c, []FieldError{{Path: "startTime", Message: "must be an RFC 3339 date-time"}})
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		respondValidationError(c, []FieldError{{Path: "endTime", Message: "must be an RFC 3339 date-time"}})
		return
	}

	session, err := h.sessionService.Submit(c.Request.Context(), claims, service.SubmitSessionInput{
		TutorName:   req.TutorName,
		StudentName: req.StudentName,
		Subject:     req.Subject,
		StartTime:   startTime,
		EndTime:     endTime,
		Notes:       req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// List godoc
// @Summary List tutoring sessions
// @Description Return the sessions visible to the caller's role
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessions, err := h.sessionService.List(c.Request.Context(), claims)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if sessions == nil {
		sessions = []models.TutoringSession{}
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// ChangeStatus godoc
// @Summary Change session approval status
// @Description Approve, reject or reset a session; restricted to admins
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body ChangeStatusRequest true "New status"
// @Success 200 {object} models.TutoringSession
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/status [patch]
func (h *SessionHandler) ChangeStatus(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	status := models.ApprovalStatus(req.Status)
	if !status.Valid() {
		respondValidationError(c, []FieldError{{Path: "status", Message: "must be one of pending, approved, rejected"}})
		return
	}

	session, err := h.sessionService.ChangeStatus(c.Request.Context(), claims, c.Param("id"), status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListAudits godoc
// @Summary List status change audit entries
// @Description Return audit entries, optionally filtered by session; restricted to admins
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param session_id query string false "Session ID filter"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Router /sessions/audits [get]
func (h *SessionHandler) ListAudits(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		sessionID = c.Query("session_id")
	}

	audits, err := h.sessionService.ListAudits(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if audits == nil {
		audits = []models.SessionAudit{}
	}
	c.JSON(http.StatusOK, gin.H{"audits": audits})
}
