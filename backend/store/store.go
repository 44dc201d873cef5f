// Package store is the in-memory mock store backing the whole portal.
// Every collection lives behind a single Store owner; nothing hands out
// the raw slices or maps, and all state is lost on restart by design.
package store

import (
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tradeacademy/backend/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrUserExists    = errors.New("user already exists")
	ErrOTPInvalid    = errors.New("invalid OTP")
	ErrOTPExpired    = errors.New("expired OTP")
	ErrInvalidCourse = errors.New("invalid course id")
)

type Store struct {
	mu sync.RWMutex

	users     []models.User
	otps      map[string]models.OTPEntry
	courses   []models.Course
	live      map[int]models.LiveSession
	purchases []models.Purchase

	testimonials []models.Testimonial
	posts        []models.Post
	chat         map[int][]models.ChatMessage

	// Per-collection id counters. Independent, start at 1, never reused.
	testimonialID int
	postID        int
	commentID     int
	chatMessageID int

	otpTTL time.Duration
	logger *log.Logger
}

// New builds a store pre-loaded with the mock seed data. adminPassword
// overrides the default seed password for the admin account.
func New(logger *log.Logger, adminPassword string) *Store {
	s := &Store{
		otps:   make(map[string]models.OTPEntry),
		live:   make(map[int]models.LiveSession),
		chat:   make(map[int][]models.ChatMessage),
		otpTTL: 5 * time.Minute,
		logger: logger,
	}
	s.seed(adminPassword)
	return s
}

// SetOTPTTL overrides the default 5 minute OTP expiry.
func (s *Store) SetOTPTTL(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otpTTL = ttl
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

func (s *Store) seed(adminPassword string) {
	if adminPassword == "" {
		adminPassword = "password123"
	}
	defaultHash := mustHash("password123")

	s.users = []models.User{
		{Name: "Admin", Username: "admin", Email: "admin@example.com", Phone: "9876543210", PasswordHash: mustHash(adminPassword), Role: "admin"},
		{Name: "Test User", Username: "testuser", Email: "test@example.com", Phone: "9999999999", PasswordHash: defaultHash, Role: "user"},
		{Name: "Kundan Raj", Username: "kundan_raj", Email: "kundan@example.com", Phone: "9876543211", PasswordHash: defaultHash, Role: "user"},
	}

	s.courses = []models.Course{
		{
			ID: 1, Title: "Stock Market Fundamentals",
			Description: "Start from zero: how markets work, reading charts, placing your first trade with confidence.",
			Price: 1999, OriginalPrice: 4999, Rating: 4.8, Students: 1240,
			Icon: "📈", IconBg: "blue-100", IconColor: "blue-600",
			Badge: "Bestseller", BadgeColor: "amber",
		},
		{
			ID: 2, Title: "Options Trading Masterclass",
			Description: "Option greeks, spreads and hedging strategies used on a live desk, explained trade by trade.",
			Price: 3499, OriginalPrice: 7999, Rating: 4.7, Students: 860,
			Icon: "🎯", IconBg: "purple-100", IconColor: "purple-600",
			Badge: "Advanced", BadgeColor: "purple",
		},
		{
			ID: 3, Title: "Intraday Price Action Pro",
			Description: "A rules-based intraday system: market structure, entries, stop placement and journaling.",
			Price: 2499, OriginalPrice: 5999, Rating: 4.6, Students: 530,
			Icon: "⚡", IconBg: "emerald-100", IconColor: "emerald-600",
		},
	}
	for _, c := range s.courses {
		s.live[c.ID] = models.LiveSession{CourseID: c.ID}
	}

	seedPurchase := time.Date(2024, time.November, 12, 10, 0, 0, 0, time.UTC)
	s.purchases = []models.Purchase{
		{UserID: "testuser", CourseID: 1, PurchaseDate: seedPurchase},
		{UserID: "testuser", CourseID: 2, PurchaseDate: seedPurchase.AddDate(0, 1, 3)},
		{UserID: "kundan_raj", CourseID: 1, PurchaseDate: seedPurchase.AddDate(0, 0, 20)},
	}

	reviewed := time.Date(2025, time.January, 8, 9, 30, 0, 0, time.UTC)
	s.testimonials = []models.Testimonial{
		{
			ID: 1, UserID: "testuser", UserName: "Test User", UserRole: "Swing Trader",
			Message: "The fundamentals course finally made charts click for me. Worth every rupee.",
			Rating: 5, Status: models.TestimonialApproved,
			SubmittedAt: reviewed.AddDate(0, 0, -2), ReviewedAt: &reviewed,
		},
		{
			ID: 2, UserID: "kundan_raj", UserName: "Kundan Raj", UserRole: "Options Trader",
			Message: "Live sessions plus the chat room feel like sitting next to a mentor.",
			Rating: 4, Status: models.TestimonialApproved,
			SubmittedAt: reviewed.AddDate(0, 0, -1), ReviewedAt: ptrTime(reviewed.Add(2 * time.Hour)),
		},
	}
	s.testimonialID = 2
}

func ptrTime(t time.Time) *time.Time { return &t }
