package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/you/dmhub/domain"
)

func setupOtpStore(t *testing.T) (domain.OtpStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewOtpStore(client, 5*time.Minute), mr
}

func TestOtpStoreImpl_PutAndConsume(t *testing.T) {
	store, _ := setupOtpStore(t)
	ctx := context.Background()

	challenge := &domain.OtpChallenge{
		Phone: "+911234567890",
		Code:  "123456",
		Payload: domain.OtpPayload{
			Email:        "ops@example.com",
			Phone:        "+911234567890",
			PasswordHash: "hashed_password",
		},
	}
	if err := store.Put(ctx, challenge); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Consume(ctx, "+911234567890", "123456")
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if got.Payload.Email != "ops@example.com" {
		t.Errorf("payload email = %q, want %q", got.Payload.Email, "ops@example.com")
	}
	if got.Payload.PasswordHash != "hashed_password" {
		t.Errorf("payload hash = %q, want %q", got.Payload.PasswordHash, "hashed_password")
	}

	// Consumed challenges are gone.
	if _, err := store.Consume(ctx, "+911234567890", "123456"); err != domain.ErrInvalidOrExpiredOTP {
		t.Errorf("second Consume() error = %v, want %v", err, domain.ErrInvalidOrExpiredOTP)
	}
}

func TestOtpStoreImpl_WrongCodeLeavesChallenge(t *testing.T) {
	store, _ := setupOtpStore(t)
	ctx := context.Background()

	challenge := &domain.OtpChallenge{Phone: "+911", Code: "654321"}
	if err := store.Put(ctx, challenge); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if _, err := store.Consume(ctx, "+911", "000000"); err != domain.ErrInvalidOrExpiredOTP {
		t.Fatalf("Consume(wrong code) error = %v, want %v", err, domain.ErrInvalidOrExpiredOTP)
	}

	// A mismatch must not burn the challenge.
	if _, err := store.Consume(ctx, "+911", "654321"); err != nil {
		t.Errorf("Consume(correct code after mismatch) error = %v", err)
	}
}

func TestOtpStoreImpl_PutReplacesPriorChallenge(t *testing.T) {
	store, _ := setupOtpStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, &domain.OtpChallenge{Phone: "+911", Code: "111111"}); err != nil {
		t.Fatalf("first Put() error = %v", err)
	}
	if err := store.Put(ctx, &domain.OtpChallenge{Phone: "+911", Code: "222222"}); err != nil {
		t.Fatalf("second Put() error = %v", err)
	}

	if _, err := store.Consume(ctx, "+911", "111111"); err != domain.ErrInvalidOrExpiredOTP {
		t.Errorf("old code should be replaced, Consume() error = %v", err)
	}
	if _, err := store.Consume(ctx, "+911", "222222"); err != nil {
		t.Errorf("new code should be live, Consume() error = %v", err)
	}
}

func TestOtpStoreImpl_TTLExpiry(t *testing.T) {
	store, mr := setupOtpStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, &domain.OtpChallenge{Phone: "+911", Code: "123456"}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	mr.FastForward(5*time.Minute + time.Second)

	if _, err := store.Consume(ctx, "+911", "123456"); err != domain.ErrInvalidOrExpiredOTP {
		t.Errorf("Consume() after TTL error = %v, want %v", err, domain.ErrInvalidOrExpiredOTP)
	}
}
