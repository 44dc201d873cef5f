package models

import "time"

type ChatMessage struct {
	ID        int       `json:"id"`
	CourseID  int       `json:"courseId"`
	UserID    string    `json:"userId"` // author username
	UserName  string    `json:"userName"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
