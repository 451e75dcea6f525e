package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/models"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// =============================================================================
// Mock AuthService
// =============================================================================

type mockAuthService struct {
	verifyTokenFunc func(ctx context.Context, token string) (*service.Claims, error)
}

func (m *mockAuthService) Register(ctx context.Context, input service.RegisterInput) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResponse, error) {
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return errors.New("not implemented")
}

func (m *mockAuthService) VerifyToken(ctx context.Context, token string) (*service.Claims, error) {
	if m.verifyTokenFunc != nil {
		return m.verifyTokenFunc(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func testClaims(role models.Role) *service.Claims {
	return &service.Claims{
		Role:     role,
		Email:    "user@example.com",
		FullName: "Test User",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "user-1",
		},
	}
}

// =============================================================================
// RequireAuth Tests
// =============================================================================

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		authHeader string
		verifyErr  error
		wantStatus int
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "token-without-scheme",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "verification fails",
			authHeader: "Bearer bad-token",
			verifyErr:  errors.New("token is expired"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "revoked token",
			authHeader: "Bearer revoked-token",
			verifyErr:  service.ErrTokenRevoked,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "lowercase bearer scheme",
			authHeader: "bearer good-token",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				verifyTokenFunc: func(ctx context.Context, token string) (*service.Claims, error) {
					if tt.verifyErr != nil {
						return nil, tt.verifyErr
					}
					return testClaims(models.RoleTutor), nil
				},
			}

			router := gin.New()
			router.GET("/protected", RequireAuth(auth), func(c *gin.Context) {
				claims, ok := Identity(c)
				if !ok {
					t.Error("Identity() should return the attached claims")
				} else if claims.UserID() != "user-1" {
					t.Errorf("Identity().UserID() = %v, want user-1", claims.UserID())
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

// =============================================================================
// RequireRole Tests
// =============================================================================

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		callerRole models.Role
		allowed    []models.Role
		wantStatus int
	}{
		{
			name:       "admin allowed on admin route",
			callerRole: models.RoleAdmin,
			allowed:    []models.Role{models.RoleAdmin},
			wantStatus: http.StatusOK,
		},
		{
			name:       "tutor forbidden on admin route",
			callerRole: models.RoleTutor,
			allowed:    []models.Role{models.RoleAdmin},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "student forbidden on admin route",
			callerRole: models.RoleStudent,
			allowed:    []models.Role{models.RoleAdmin},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "student allowed on submit route",
			callerRole: models.RoleStudent,
			allowed:    []models.Role{models.RoleTutor, models.RoleStudent},
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin forbidden on submit route",
			callerRole: models.RoleAdmin,
			allowed:    []models.Role{models.RoleTutor, models.RoleStudent},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				verifyTokenFunc: func(ctx context.Context, token string) (*service.Claims, error) {
					return testClaims(tt.callerRole), nil
				},
			}

			router := gin.New()
			router.GET("/gated", RequireAuth(auth), RequireRole(tt.allowed...), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/gated", nil)
			req.Header.Set("Authorization", "Bearer token")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRole_WithoutRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/gated", RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 when no identity is attached", w.Code)
	}
}
