package store

import (
	"time"

	"tradeacademy/backend/models"
)

// HasPurchase reports whether the user holds a purchase record for the
// course. Purchases are seed data only; there is no payment write path.
func (s *Store) HasPurchase(username string, courseID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.purchases {
		if p.UserID == username && p.CourseID == courseID {
			return true
		}
	}
	return false
}

// Purchases returns the user's purchase records, for dashboard display.
func (s *Store) Purchases(username string) []models.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Purchase
	for _, p := range s.purchases {
		if p.UserID == username {
			out = append(out, p)
		}
	}
	return out
}

// ChatMessages returns the full log for a course; callers poll.
func (s *Store) ChatMessages(courseID int) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.chat[courseID]
	out := make([]models.ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}

// AppendChatMessage adds a message to the course log. Message ids are
// global across courses, so a message keeps its id if logs are merged.
func (s *Store) AppendChatMessage(courseID int, user models.SessionUser, message string) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chatMessageID++
	m := models.ChatMessage{
		ID:        s.chatMessageID,
		CourseID:  courseID,
		UserID:    user.Username,
		UserName:  user.Name,
		Message:   message,
		Timestamp: time.Now(),
	}
	s.chat[courseID] = append(s.chat[courseID], m)
	return m
}
