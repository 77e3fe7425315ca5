package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/you/dmhub/domain"
)

var adminLog = logrus.WithField("prefix", "admin")

// AdminServiceImpl implements domain.AdminService: OTP-gated registration
// and password reset, login, and the session gate lookup.
type AdminServiceImpl struct {
	adminRepo   domain.AdminRepository
	otpStore    domain.OtpStore
	passwordSvc domain.PasswordService
	sms         domain.SMSService
	otpLength   int
}

// NewAdminService creates a new admin service.
func NewAdminService(
	adminRepo domain.AdminRepository,
	otpStore domain.OtpStore,
	passwordSvc domain.PasswordService,
	sms domain.SMSService,
	otpLength int,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		adminRepo:   adminRepo,
		otpStore:    otpStore,
		passwordSvc: passwordSvc,
		sms:         sms,
		otpLength:   otpLength,
	}
}

// BeginRegistration implements domain.AdminService. The password is
// hashed before it enters the challenge payload, so plaintext never
// touches the store. A prior challenge for the phone is replaced.
func (s *AdminServiceImpl) BeginRegistration(ctx context.Context, email, phone, password string) error {
	if _, err := s.adminRepo.FindByEmail(ctx, email); err == nil {
		return domain.ErrAlreadyRegistered
	}
	if _, err := s.adminRepo.FindByPhone(ctx, phone); err == nil {
		return domain.ErrAlreadyRegistered
	}

	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	passwordHash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	challenge := &domain.OtpChallenge{
		Phone: phone,
		Code:  code,
		Payload: domain.OtpPayload{
			Email:        email,
			Phone:        phone,
			PasswordHash: passwordHash,
		},
	}
	if err := s.otpStore.Put(ctx, challenge); err != nil {
		return fmt.Errorf("failed to store OTP challenge: %w", err)
	}

	body := fmt.Sprintf("Your DM-Hub Admin verification code is: %s. It expires in 5 minutes.", code)
	if err := s.sms.SendSMS(phone, body); err != nil {
		// The challenge stays live; re-requesting the OTP is a plain
		// retry of this endpoint.
		adminLog.WithError(err).WithField("phone", phone).Warn("OTP SMS send failed")
	}

	return nil
}

// CompleteRegistration implements domain.AdminService. The challenge
// covers both wrong-code and TTL-expired cases with a single error.
func (s *AdminServiceImpl) CompleteRegistration(ctx context.Context, phone, code string) (*domain.AdminUser, error) {
	challenge, err := s.otpStore.Consume(ctx, phone, code)
	if err != nil {
		return nil, err
	}

	admin := &domain.AdminUser{
		Email:        challenge.Payload.Email,
		PasswordHash: challenge.Payload.PasswordHash,
		Phone:        challenge.Payload.Phone,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	adminLog.WithField("email", admin.Email).Info("admin account verified and created")
	return admin, nil
}

// BeginReset implements domain.AdminService.
func (s *AdminServiceImpl) BeginReset(ctx context.Context, phone string) error {
	admin, err := s.adminRepo.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}

	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	challenge := &domain.OtpChallenge{
		Phone: phone,
		Code:  code,
		Payload: domain.OtpPayload{
			Email: admin.Email,
			Phone: phone,
		},
	}
	if err := s.otpStore.Put(ctx, challenge); err != nil {
		return fmt.Errorf("failed to store OTP challenge: %w", err)
	}

	body := fmt.Sprintf("Your DM-Hub password reset code is: %s. It expires in 5 minutes.", code)
	if err := s.sms.SendSMS(phone, body); err != nil {
		adminLog.WithError(err).WithField("phone", phone).Warn("reset OTP SMS send failed")
	}

	return nil
}

// CompleteReset implements domain.AdminService.
func (s *AdminServiceImpl) CompleteReset(ctx context.Context, phone, code, newPassword string) error {
	if _, err := s.otpStore.Consume(ctx, phone, code); err != nil {
		return err
	}

	passwordHash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// ErrAdminNotFound here means the account disappeared between
	// issuance and completion.
	if err := s.adminRepo.UpdatePassword(ctx, phone, passwordHash); err != nil {
		return err
	}

	adminLog.WithField("phone", phone).Info("admin password updated")
	return nil
}

// Login implements domain.AdminService. Unknown email and wrong password
// are indistinguishable to the caller. The returned credential is the
// admin's email; Authorize resolves it on every protected call.
func (s *AdminServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(admin.PasswordHash, password) {
		return "", domain.ErrInvalidCredentials
	}

	return admin.Email, nil
}

// Authorize implements domain.AdminService.
func (s *AdminServiceImpl) Authorize(ctx context.Context, credential string) (*domain.AdminUser, error) {
	if credential == "" {
		return nil, domain.ErrUnauthorized
	}
	admin, err := s.adminRepo.FindByEmail(ctx, credential)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return admin, nil
}

// generateCode produces a cryptographically random numeric OTP code.
func (s *AdminServiceImpl) generateCode() (string, error) {
	digits := make([]byte, s.otpLength)
	for i := 0; i < s.otpLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}
