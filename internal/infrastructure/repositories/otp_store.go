package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/dmhub/domain"
)

// OtpStoreImpl implements domain.OtpStore using Redis. The TTL on the key
// is the challenge lifetime, so expiry needs no sweeper.
type OtpStoreImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewOtpStore creates a new OTP challenge store.
func NewOtpStore(client *redis.Client, ttl time.Duration) domain.OtpStore {
	return &OtpStoreImpl{
		client: client,
		prefix: "otp:",
		ttl:    ttl,
	}
}

// Put implements domain.OtpStore. SET overwrites any live challenge for
// the phone and restarts the TTL, which gives the required
// one-challenge-per-phone upsert semantics.
func (s *OtpStoreImpl) Put(ctx context.Context, challenge *domain.OtpChallenge) error {
	if challenge.CreatedAt.IsZero() {
		challenge.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal otp challenge: %w", err)
	}
	return s.client.Set(ctx, s.prefix+challenge.Phone, data, s.ttl).Err()
}

// Consume implements domain.OtpStore. The challenge is deleted only on a
// successful match; a wrong code leaves it live for another attempt
// within the TTL window.
func (s *OtpStoreImpl) Consume(ctx context.Context, phone, code string) (*domain.OtpChallenge, error) {
	key := s.prefix + phone
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrInvalidOrExpiredOTP
		}
		return nil, fmt.Errorf("failed to read otp challenge: %w", err)
	}

	var challenge domain.OtpChallenge
	if err := json.Unmarshal([]byte(data), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp challenge: %w", err)
	}

	if challenge.Code != code {
		return nil, domain.ErrInvalidOrExpiredOTP
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("failed to delete consumed otp challenge: %w", err)
	}

	return &challenge, nil
}
