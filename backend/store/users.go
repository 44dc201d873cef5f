package store

import (
	"strings"

	"tradeacademy/backend/models"
)

func matchField(u *models.User, field, value string) bool {
	switch field {
	case "username":
		return u.Username == value
	case "email":
		return u.Email == value
	case "phone":
		return u.Phone == value
	}
	return false
}

// FindByLogin resolves a login identifier against the selected field.
// An empty loginType falls back to matching any of the three fields,
// the legacy behavior for API callers that never send a type.
func (s *Store) FindByLogin(identifier, loginType string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		u := &s.users[i]
		switch loginType {
		case "username", "email", "phone":
			if matchField(u, loginType, identifier) {
				return *u, true
			}
		default:
			if u.Username == identifier || u.Email == identifier || u.Phone == identifier {
				return *u, true
			}
		}
	}
	return models.User{}, false
}

// Exists reports whether any account, seed or registered, holds the value
// in the given field. Unknown fields report false.
func (s *Store) Exists(field, value string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if matchField(&s.users[i], field, value) {
			return true
		}
	}
	return false
}

// CreateUser appends a new account after the authoritative uniqueness
// check on username, email and phone. The pre-registration existence
// probe is advisory only; this check is the real boundary.
func (s *Store) CreateUser(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.Username = strings.ToLower(strings.TrimSpace(u.Username))
	for i := range s.users {
		ex := &s.users[i]
		if ex.Username == u.Username || ex.Email == u.Email || ex.Phone == u.Phone {
			return ErrUserExists
		}
	}
	if u.Role == "" {
		u.Role = "user"
	}
	s.users = append(s.users, u)
	return nil
}

// UpdatePassword swaps the stored hash for the account matching the
// identifier by email or phone. Accounts are never deleted, so this is
// the only mutation users see after signup.
func (s *Store) UpdatePassword(identifier, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		u := &s.users[i]
		if u.Email == identifier || u.Phone == identifier {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return ErrNotFound
}
