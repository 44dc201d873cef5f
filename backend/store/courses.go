package store

import (
	"time"

	"tradeacademy/backend/models"
)

// Courses returns a snapshot of the catalog in insertion order.
func (s *Store) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

func (s *Store) Course(id int) (models.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.courses {
		if s.courses[i].ID == id {
			return s.courses[i], true
		}
	}
	return models.Course{}, false
}

// AddCourse assigns the next id (max existing + 1), fills display
// defaults and creates the paired live-session entry.
func (s *Store) AddCourse(c models.Course) models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 1
	for i := range s.courses {
		if s.courses[i].ID >= next {
			next = s.courses[i].ID + 1
		}
	}
	c.ID = next
	if c.Rating == 0 {
		c.Rating = 4.5
	}
	if c.Icon == "" {
		c.Icon = "📊"
	}
	if c.IconBg == "" {
		c.IconBg = "blue-100"
	}
	if c.IconColor == "" {
		c.IconColor = "blue-600"
	}
	if c.Badge == "" {
		c.Badge = "New"
		c.BadgeColor = "emerald"
	}

	s.courses = append(s.courses, c)
	s.live[c.ID] = models.LiveSession{CourseID: c.ID}
	return c
}

// EditCourse overwrites the mutable fields of the matching record in
// place. Unknown ids are a silent no-op, matching the admin contract.
func (s *Store) EditCourse(id int, c models.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID == id {
			c.ID = id
			s.courses[i] = c
			return
		}
	}
}

// DeleteCourse removes the course and cascades to its live-session
// entry. Absent ids are a no-op.
func (s *Store) DeleteCourse(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			break
		}
	}
	delete(s.live, id)
}

// ToggleLive flips the broadcast flag for the course. A positive id with
// no live entry gets one created on the fly (a course deleted mid-poll,
// or a toggle racing an add); a non-positive id is the caller's error.
func (s *Store) ToggleLive(courseID int) (models.LiveSession, error) {
	if courseID <= 0 {
		return models.LiveSession{}, ErrInvalidCourse
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.live[courseID]
	if !ok {
		entry = models.LiveSession{CourseID: courseID}
	}
	if entry.IsLive {
		entry.IsLive = false
		entry.StartTime = nil
	} else {
		now := time.Now()
		entry.IsLive = true
		entry.StartTime = &now
	}
	s.live[courseID] = entry
	return entry, nil
}

// LiveStatus returns the full live map keyed by course id.
func (s *Store) LiveStatus() map[int]models.LiveSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int]models.LiveSession, len(s.live))
	for id, entry := range s.live {
		out[id] = entry
	}
	return out
}
