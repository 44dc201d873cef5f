package store

import (
	"fmt"
	"math/rand"
	"time"

	"tradeacademy/backend/models"
)

// GenerateOTP creates a fresh 6-digit code for the identifier and stores
// it with the configured expiry. Delivery is simulated by writing the
// code to the operational log; there is no real SMS/email channel.
func (s *Store) GenerateOTP(identifier string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := fmt.Sprintf("%d", 100000+rand.Intn(900000))
	s.otps[identifier] = models.OTPEntry{
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpTTL),
	}
	if s.logger != nil {
		s.logger.Printf("[OTP] Code for %s: %s", identifier, code)
	}
	return code
}

// VerifyOTP checks the code for exact match and freshness. Expired
// entries are left in place; expiry is checked, not actively purged.
func (s *Store) VerifyOTP(identifier, code string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.otps[identifier]
	if !ok || code == "" || entry.Code != code {
		return ErrOTPInvalid
	}
	if time.Now().After(entry.ExpiresAt) {
		return ErrOTPExpired
	}
	return nil
}

// ConsumeOTP drops the entry after a successful verification so the
// code cannot be replayed.
func (s *Store) ConsumeOTP(identifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.otps, identifier)
}
