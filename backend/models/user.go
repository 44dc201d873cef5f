package models

import "time"

type User struct {
	Name         string `json:"name"`
	Username     string `json:"username"` // unique, lowercase slug
	Email        string `json:"email"`
	Phone        string `json:"phone"` // 10 digits
	State        string `json:"state,omitempty"`
	City         string `json:"city,omitempty"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"` // user, admin
}

// SessionUser is the identity record kept in the server-side session.
type SessionUser struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u *User) Session() SessionUser {
	name := u.Name
	if name == "" {
		name = u.Username
	}
	return SessionUser{
		Name:     name,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

type OTPEntry struct {
	Code      string
	ExpiresAt time.Time
}

type Purchase struct {
	UserID       string    `json:"userId"` // username
	CourseID     int       `json:"courseId"`
	PurchaseDate time.Time `json:"purchaseDate"`
}
