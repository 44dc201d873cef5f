package models

import "time"

type Post struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"` // author username
	UserName  string    `json:"userName"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	LikedBy   []string  `json:"likedBy"` // usernames, no duplicates
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
