// Package handlers contains HTTP request handlers for the booking backend.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode"

	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the details list attached to validation
// failures.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func respondValidationError(c *gin.Context, details []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "validation failed",
		"details": details,
	})
}

// respondBindingError translates request binding failures into the 400 shape
// with a per-field details list when the failure came from struct validation.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{
				Path:    jsonFieldName(fe.Field()),
				Message: validationMessage(fe),
			})
		}
		respondValidationError(c, details)
		return
	}
	respondError(c, http.StatusBadRequest, "invalid request body")
}

// respondServiceError is the single translation point from the domain error
// taxonomy to HTTP status codes. Unknown errors are logged server-side and
// surfaced as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		respondValidationError(c, []FieldError{{Path: verr.Field, Message: verr.Message}})
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrTokenRevoked):
		respondError(c, http.StatusUnauthorized, "invalid or expired token")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])
	return strings.TrimSpace(string(runes))
}
