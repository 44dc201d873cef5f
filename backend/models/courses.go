package models

import "time"

type Course struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Rating        float64 `json:"rating"`
	Students      int     `json:"students"`
	Icon          string  `json:"icon"`
	IconBg        string  `json:"iconBg"`
	IconColor     string  `json:"iconColor"`
	Badge         string  `json:"badge,omitempty"`
	BadgeColor    string  `json:"badgeColor,omitempty"`
	DemoVideo     string  `json:"demoVideo,omitempty"`
	StreamLink    string  `json:"streamLink,omitempty"`
}

// LiveSession pairs a course with its broadcast flag. StartTime is set on
// the transition to live and cleared when the session goes offline, so
// IsLive == false always implies StartTime == nil.
type LiveSession struct {
	CourseID  int        `json:"courseId"`
	IsLive    bool       `json:"isLive"`
	StartTime *time.Time `json:"startTime"`
}
