package store

import (
	"slices"
	"time"

	"tradeacademy/backend/models"
)

// CreatePost prepends a new post so the feed reads newest first.
func (s *Store) CreatePost(user models.SessionUser, title, content string) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.postID++
	p := models.Post{
		ID:        s.postID,
		UserID:    user.Username,
		UserName:  user.Name,
		Title:     title,
		Content:   content,
		LikedBy:   []string{},
		Comments:  []models.Comment{},
		CreatedAt: time.Now(),
	}
	s.posts = append([]models.Post{p}, s.posts...)
	return p
}

// Posts returns a deep copy of the feed in stored (newest-first) order.
func (s *Store) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, len(s.posts))
	for i, p := range s.posts {
		p.LikedBy = slices.Clone(p.LikedBy)
		p.Comments = slices.Clone(p.Comments)
		out[i] = p
	}
	return out
}

// ToggleLike flips the user's like on the post: present removes, absent
// adds. Returns the new count and whether the user now likes the post.
func (s *Store) ToggleLike(postID int, username string) (likes int, isLiked bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		p := &s.posts[i]
		if p.ID != postID {
			continue
		}
		if idx := slices.Index(p.LikedBy, username); idx >= 0 {
			p.LikedBy = slices.Delete(p.LikedBy, idx, idx+1)
			p.Likes--
			return p.Likes, false, nil
		}
		p.LikedBy = append(p.LikedBy, username)
		p.Likes++
		return p.Likes, true, nil
	}
	return 0, false, ErrNotFound
}

// AddComment appends to the post's comment list in arrival order.
func (s *Store) AddComment(postID int, user models.SessionUser, content string) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		s.commentID++
		c := models.Comment{
			ID:        s.commentID,
			UserID:    user.Username,
			UserName:  user.Name,
			Content:   content,
			CreatedAt: time.Now(),
		}
		s.posts[i].Comments = append(s.posts[i].Comments, c)
		return c, nil
	}
	return models.Comment{}, ErrNotFound
}

func (s *Store) DeletePost(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteComment(postID, commentID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		comments := s.posts[i].Comments
		for j := range comments {
			if comments[j].ID == commentID {
				s.posts[i].Comments = append(comments[:j], comments[j+1:]...)
				return nil
			}
		}
		return ErrNotFound
	}
	return ErrNotFound
}
