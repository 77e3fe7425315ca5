package domain

import (
	"context"
	"time"
)

// HelpRequestRepository defines help-request data access operations.
// Records are never deleted; status updates are last-write-wins.
type HelpRequestRepository interface {
	Create(ctx context.Context, req *HelpRequest) error
	FindByID(ctx context.Context, id string) (*HelpRequest, error)
	// ListActive returns requests that are Pending or Dispatched, plus
	// Completed requests whose timestamp is at or after completedSince,
	// newest first, capped at limit.
	ListActive(ctx context.Context, completedSince time.Time, limit int) ([]HelpRequest, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus) (*HelpRequest, error)
}

// AdminRepository defines admin directory data access operations.
type AdminRepository interface {
	Create(ctx context.Context, admin *AdminUser) error
	FindByEmail(ctx context.Context, email string) (*AdminUser, error)
	FindByPhone(ctx context.Context, phone string) (*AdminUser, error)
	ListAll(ctx context.Context) ([]AdminUser, error)
	UpdatePassword(ctx context.Context, phone, passwordHash string) error
}

// VolunteerRepository defines volunteer directory data access operations.
type VolunteerRepository interface {
	Create(ctx context.Context, v *Volunteer) error
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	// FindByLocationKey returns volunteers whose free-text location
	// contains key as a case-insensitive substring.
	FindByLocationKey(ctx context.Context, key string) ([]Volunteer, error)
}

// OtpStore holds at most one live challenge per phone number, expiring it
// after a fixed TTL.
type OtpStore interface {
	// Put stores the challenge, replacing any prior challenge for the
	// same phone and restarting its TTL.
	Put(ctx context.Context, challenge *OtpChallenge) error
	// Consume returns the live challenge for phone when code matches and
	// deletes it. A wrong code or a missing/expired challenge yields
	// ErrInvalidOrExpiredOTP; a mismatch leaves the challenge in place.
	Consume(ctx context.Context, phone, code string) (*OtpChallenge, error)
}

// SMSService sends a text message to a single recipient.
type SMSService interface {
	SendSMS(to, body string) error
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// LocationMatcher derives the volunteer search key for a help request.
// The baseline implementation is naive substring matching over a known
// city list; real geocoding can replace it without touching the
// dispatcher.
type LocationMatcher interface {
	SearchKey(req *HelpRequest) string
}

// Dispatcher fans a new help request out to admins and geo-matched
// volunteers. Dispatch is best-effort: send failures are logged, never
// returned, and one failing recipient does not block the others.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *HelpRequest)
}

// HelpRequestService defines the help-request lifecycle.
type HelpRequestService interface {
	Submit(ctx context.Context, input SubmitHelpInput) (*HelpRequest, error)
	ListActive(ctx context.Context) ([]HelpRequest, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus) (*HelpRequest, error)
}

// AdminService defines admin registration, credential, and session
// operations. Login returns the bearer credential accepted by Authorize.
type AdminService interface {
	BeginRegistration(ctx context.Context, email, phone, password string) error
	CompleteRegistration(ctx context.Context, phone, code string) (*AdminUser, error)
	BeginReset(ctx context.Context, phone string) error
	CompleteReset(ctx context.Context, phone, code, newPassword string) error
	Login(ctx context.Context, email, password string) (string, error)
	// Authorize resolves a bearer credential to the admin it names, or
	// ErrUnauthorized. It is the single trust boundary for protected
	// mutations, isolated here so the credential scheme can change
	// without touching callers.
	Authorize(ctx context.Context, credential string) (*AdminUser, error)
}

// VolunteerService registers responders.
type VolunteerService interface {
	Register(ctx context.Context, v *Volunteer) (*Volunteer, error)
}

// HazardFeed aggregates live hazard events for the map client.
type HazardFeed interface {
	ActiveEvents(ctx context.Context) ([]HazardEvent, error)
}

// PolicyEnforcer answers whether a subject may perform an action on a
// resource. Backed by Casbin in production.
type PolicyEnforcer interface {
	Enforce(sub, obj, act string) (bool, error)
}
