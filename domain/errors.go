package domain

import "errors"

// Help request errors
var (
	ErrMissingField    = errors.New("required field is missing")
	ErrInvalidLocation = errors.New("location data (GPS or manual address) is required")
	ErrInvalidStatus   = errors.New("invalid status provided")
	ErrRequestNotFound = errors.New("help request not found")
)

// Admin directory errors
var (
	ErrAlreadyRegistered   = errors.New("email or phone number is already registered")
	ErrInvalidOrExpiredOTP = errors.New("invalid or expired otp")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAdminNotFound       = errors.New("admin user not found")
)

// Authorization errors
var (
	ErrUnauthorized = errors.New("unauthorized: admin session required")
)

// Upstream errors
var (
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
