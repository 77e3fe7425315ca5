package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/dmhub/domain"
	"github.com/you/dmhub/internal/mocks"
)

func setupAdminRouter(svc *mocks.MockAdminService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAdminHandlers(svc)
	r := gin.New()
	r.POST("/api/admin/register/send-otp", h.RegisterSendOTP)
	r.POST("/api/admin/register/verify-otp", h.RegisterVerifyOTP)
	r.POST("/api/admin/login", h.Login)
	r.POST("/api/admin/reset/send-otp", h.ResetSendOTP)
	r.POST("/api/admin/reset/change-password", h.ResetChangePassword)
	return r
}

func TestAdminHandlers_RegisterSendOTP(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
		expectedMsg  string
	}{
		{"otp sent", nil, http.StatusOK, "OTP sent successfully"},
		{"already registered", domain.ErrAlreadyRegistered, http.StatusConflict, "already registered"},
		{"store failure", errors.New("redis down"), http.StatusInternalServerError, "Could not send OTP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAdminService()
			svc.BeginRegistrationFunc = func(ctx context.Context, email, phone, password string) error {
				return tt.serviceErr
			}
			r := setupAdminRouter(svc)

			w := performJSON(r, http.MethodPost, "/api/admin/register/send-otp", gin.H{
				"email":    "ops@example.com",
				"phone":    "+911234567890",
				"password": "secret123",
			})

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedMsg)
		})
	}
}

func TestAdminHandlers_RegisterSendOTP_Validation(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"phone": "+911", "password": "secret123"}},
		{"invalid email", gin.H{"email": "not-an-email", "phone": "+911", "password": "secret123"}},
		{"short password", gin.H{"email": "ops@example.com", "phone": "+911", "password": "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupAdminRouter(mocks.NewMockAdminService())
			w := performJSON(r, http.MethodPost, "/api/admin/register/send-otp", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAdminHandlers_RegisterVerifyOTP(t *testing.T) {
	t.Run("account created", func(t *testing.T) {
		svc := mocks.NewMockAdminService()
		svc.CompleteRegistrationFunc = func(ctx context.Context, phone, code string) (*domain.AdminUser, error) {
			return &domain.AdminUser{Email: "ops@example.com", Phone: phone}, nil
		}
		r := setupAdminRouter(svc)

		w := performJSON(r, http.MethodPost, "/api/admin/register/verify-otp", gin.H{
			"phone":   "+911",
			"otpCode": "123456",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "verified and created")
	})

	t.Run("invalid otp", func(t *testing.T) {
		svc := mocks.NewMockAdminService()
		svc.CompleteRegistrationFunc = func(ctx context.Context, phone, code string) (*domain.AdminUser, error) {
			return nil, domain.ErrInvalidOrExpiredOTP
		}
		r := setupAdminRouter(svc)

		w := performJSON(r, http.MethodPost, "/api/admin/register/verify-otp", gin.H{
			"phone":   "+911",
			"otpCode": "000000",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid OTP")
	})
}

func TestAdminHandlers_Login(t *testing.T) {
	t.Run("returns bearer credential", func(t *testing.T) {
		svc := mocks.NewMockAdminService()
		svc.LoginFunc = func(ctx context.Context, email, password string) (string, error) {
			return email, nil
		}
		r := setupAdminRouter(svc)

		w := performJSON(r, http.MethodPost, "/api/admin/login", gin.H{
			"email":    "ops@example.com",
			"password": "secret123",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"isAdmin":true`)
		assert.Contains(t, w.Body.String(), `"token":"ops@example.com"`)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := mocks.NewMockAdminService()
		svc.LoginFunc = func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		}
		r := setupAdminRouter(svc)

		w := performJSON(r, http.MethodPost, "/api/admin/login", gin.H{
			"email":    "ops@example.com",
			"password": "wrong1",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
	})
}

func TestAdminHandlers_ResetSendOTP(t *testing.T) {
	t.Run("otp sent", func(t *testing.T) {
		r := setupAdminRouter(mocks.NewMockAdminService())

		w := performJSON(r, http.MethodPost, "/api/admin/reset/send-otp", gin.H{"phone": "+911"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown phone", func(t *testing.T) {
		svc := mocks.NewMockAdminService()
		svc.BeginResetFunc = func(ctx context.Context, phone string) error {
			return domain.ErrAdminNotFound
		}
		r := setupAdminRouter(svc)

		w := performJSON(r, http.MethodPost, "/api/admin/reset/send-otp", gin.H{"phone": "+919"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not found in admin records")
	})
}

func TestAdminHandlers_ResetChangePassword(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{"password updated", nil, http.StatusOK},
		{"invalid otp", domain.ErrInvalidOrExpiredOTP, http.StatusUnauthorized},
		{"admin disappeared", domain.ErrAdminNotFound, http.StatusNotFound},
		{"store failure", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAdminService()
			svc.CompleteResetFunc = func(ctx context.Context, phone, code, newPassword string) error {
				return tt.serviceErr
			}
			r := setupAdminRouter(svc)

			w := performJSON(r, http.MethodPost, "/api/admin/reset/change-password", gin.H{
				"phone":       "+911",
				"otpCode":     "123456",
				"newPassword": "newpass123",
			})

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
