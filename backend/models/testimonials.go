package models

import "time"

const (
	TestimonialPending  = "pending"
	TestimonialApproved = "approved"
	TestimonialRejected = "rejected"
)

type Testimonial struct {
	ID          int        `json:"id"`
	UserID      string     `json:"userId"` // author username
	UserName    string     `json:"userName"`
	UserRole    string     `json:"userRole"` // free-form label, e.g. "Options Trader"
	Message     string     `json:"message"`
	Rating      int        `json:"rating"` // 1..5
	Status      string     `json:"status"`
	SubmittedAt time.Time  `json:"submittedAt"`
	ReviewedAt  *time.Time `json:"reviewedAt"`
}
