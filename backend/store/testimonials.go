package store

import (
	"sort"
	"time"

	"tradeacademy/backend/models"
)

// SubmitTestimonial records a new pending testimonial for the user.
func (s *Store) SubmitTestimonial(user models.SessionUser, roleLabel, message string, rating int) models.Testimonial {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.testimonialID++
	t := models.Testimonial{
		ID:          s.testimonialID,
		UserID:      user.Username,
		UserName:    user.Name,
		UserRole:    roleLabel,
		Message:     message,
		Rating:      rating,
		Status:      models.TestimonialPending,
		SubmittedAt: time.Now(),
	}
	s.testimonials = append(s.testimonials, t)
	return t
}

// ApprovedTestimonials returns approved entries, most recently
// reviewed first.
func (s *Store) ApprovedTestimonials() []models.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Testimonial
	for _, t := range s.testimonials {
		if t.Status == models.TestimonialApproved {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].ReviewedAt, out[j].ReviewedAt
		switch {
		case ri == nil:
			return false
		case rj == nil:
			return true
		default:
			return ri.After(*rj)
		}
	})
	return out
}

// TestimonialsByUser returns the author's pending and approved entries,
// newest submission first. Rejected entries are hidden from the author.
func (s *Store) TestimonialsByUser(username string) []models.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Testimonial
	for _, t := range s.testimonials {
		if t.UserID == username && t.Status != models.TestimonialRejected {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out
}

// Testimonials returns the full moderation queue, newest first.
func (s *Store) Testimonials() []models.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Testimonial, len(s.testimonials))
	copy(out, s.testimonials)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out
}

// ReviewTestimonial sets the moderation status and stamps ReviewedAt.
// Re-reviewing an already moderated entry is allowed and simply
// overwrites the previous decision.
func (s *Store) ReviewTestimonial(id int, approve bool) (models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.testimonials {
		if s.testimonials[i].ID != id {
			continue
		}
		now := time.Now()
		if approve {
			s.testimonials[i].Status = models.TestimonialApproved
		} else {
			s.testimonials[i].Status = models.TestimonialRejected
		}
		s.testimonials[i].ReviewedAt = &now
		return s.testimonials[i], nil
	}
	return models.Testimonial{}, ErrNotFound
}
