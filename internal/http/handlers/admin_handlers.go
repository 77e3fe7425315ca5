package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/dmhub/domain"
)

// AdminHandlers handles admin registration, reset, and login requests.
type AdminHandlers struct {
	adminSvc domain.AdminService
}

// NewAdminHandlers creates new admin handlers.
func NewAdminHandlers(adminSvc domain.AdminService) *AdminHandlers {
	return &AdminHandlers{adminSvc: adminSvc}
}

// RegisterSendOTPRequest begins admin registration.
type RegisterSendOTPRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterVerifyOTPRequest completes admin registration.
type RegisterVerifyOTPRequest struct {
	Phone   string `json:"phone" binding:"required"`
	OTPCode string `json:"otpCode" binding:"required"`
}

// LoginRequest obtains the bearer credential.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResetSendOTPRequest begins a password reset.
type ResetSendOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// ResetChangePasswordRequest completes a password reset.
type ResetChangePasswordRequest struct {
	Phone       string `json:"phone" binding:"required"`
	OTPCode     string `json:"otpCode" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// RegisterSendOTP handles POST /api/admin/register/send-otp.
func (h *AdminHandlers) RegisterSendOTP(c *gin.Context) {
	var req RegisterSendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.adminSvc.BeginRegistration(c.Request.Context(), req.Email, req.Phone, req.Password); err != nil {
		if err == domain.ErrAlreadyRegistered {
			c.JSON(http.StatusConflict, gin.H{"message": "This email or phone number is already registered."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error: Could not send OTP."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully. Please check your phone."})
}

// RegisterVerifyOTP handles POST /api/admin/register/verify-otp.
func (h *AdminHandlers) RegisterVerifyOTP(c *gin.Context) {
	var req RegisterVerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := h.adminSvc.CompleteRegistration(c.Request.Context(), req.Phone, req.OTPCode); err != nil {
		if err == domain.ErrInvalidOrExpiredOTP {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid OTP or expired."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during final registration."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account verified and created successfully."})
}

// Login handles POST /api/admin/login.
func (h *AdminHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, err := h.adminSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during login."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAdmin": true, "token": token})
}

// ResetSendOTP handles POST /api/admin/reset/send-otp.
func (h *AdminHandlers) ResetSendOTP(c *gin.Context) {
	var req ResetSendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.adminSvc.BeginReset(c.Request.Context(), req.Phone); err != nil {
		if err == domain.ErrAdminNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Phone number not found in admin records."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error: Could not initiate reset."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully."})
}

// ResetChangePassword handles POST /api/admin/reset/change-password.
func (h *AdminHandlers) ResetChangePassword(c *gin.Context) {
	var req ResetChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.adminSvc.CompleteReset(c.Request.Context(), req.Phone, req.OTPCode, req.NewPassword); err != nil {
		switch err {
		case domain.ErrInvalidOrExpiredOTP:
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid OTP."})
		case domain.ErrAdminNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Admin user not found for update."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during password change."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password successfully updated. You can now log in."})
}
