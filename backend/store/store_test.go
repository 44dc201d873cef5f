package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeacademy/backend/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(nil, "")
}

func sessionUser(username string) models.SessionUser {
	return models.SessionUser{Name: username, Username: username, Email: username + "@example.com", Role: "user"}
}

func TestToggleLiveFlipsFlagAndStartTime(t *testing.T) {
	s := newTestStore(t)

	entry, err := s.ToggleLive(1)
	require.NoError(t, err)
	assert.True(t, entry.IsLive)
	assert.NotNil(t, entry.StartTime)

	entry, err = s.ToggleLive(1)
	require.NoError(t, err)
	assert.False(t, entry.IsLive)
	assert.Nil(t, entry.StartTime)
}

func TestToggleLiveRejectsNonPositiveID(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ToggleLive(0)
	assert.ErrorIs(t, err, ErrInvalidCourse)
	_, err = s.ToggleLive(-3)
	assert.ErrorIs(t, err, ErrInvalidCourse)
}

func TestDeleteCourseCascadesLiveEntry(t *testing.T) {
	s := newTestStore(t)

	s.DeleteCourse(1)

	_, found := s.Course(1)
	assert.False(t, found)
	_, found = s.LiveStatus()[1]
	assert.False(t, found)

	// Toggling the deleted id recreates the entry on the fly.
	entry, err := s.ToggleLive(1)
	require.NoError(t, err)
	assert.True(t, entry.IsLive)
	assert.Contains(t, s.LiveStatus(), 1)
}

func TestAddCourseAssignsMaxPlusOne(t *testing.T) {
	s := newTestStore(t)

	added := s.AddCourse(models.Course{Title: "Futures Basics", Description: "d"})
	assert.Equal(t, 4, added.ID)
	assert.Contains(t, s.LiveStatus(), 4)

	// Ids are max+1, so deleting the newest then re-adding reuses it,
	// but deleting an older course never shifts later assignments.
	s.DeleteCourse(2)
	next := s.AddCourse(models.Course{Title: "Crypto 101", Description: "d"})
	assert.Equal(t, 5, next.ID)
}

func TestAddCourseDefaults(t *testing.T) {
	s := newTestStore(t)

	added := s.AddCourse(models.Course{Title: "Futures Basics", Description: "d"})
	assert.Equal(t, 4.5, added.Rating)
	assert.Equal(t, "New", added.Badge)
	assert.NotEmpty(t, added.Icon)
}

func TestEditCourseUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore(t)

	before := s.Courses()
	s.EditCourse(999, models.Course{Title: "ghost"})
	assert.Equal(t, before, s.Courses())
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	s := newTestStore(t)

	fresh := models.User{Name: "New", Username: "newbie", Email: "new@example.com", Phone: "1234567890", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(fresh))

	for _, dup := range []models.User{
		{Username: "newbie", Email: "other@example.com", Phone: "1234500000"},
		{Username: "other", Email: "new@example.com", Phone: "1234500001"},
		{Username: "other2", Email: "other2@example.com", Phone: "1234567890"},
		{Username: "admin", Email: "x@example.com", Phone: "1234500002"}, // seed collision
	} {
		assert.ErrorIs(t, s.CreateUser(dup), ErrUserExists)
	}
}

func TestFindByLoginStrictAndFallback(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.FindByLogin("test@example.com", "username")
	assert.False(t, ok, "email must not match when username lookup was requested")

	u, ok := s.FindByLogin("test@example.com", "email")
	require.True(t, ok)
	assert.Equal(t, "testuser", u.Username)

	// Legacy callers without a loginType match any field.
	u, ok = s.FindByLogin("9999999999", "")
	require.True(t, ok)
	assert.Equal(t, "testuser", u.Username)
}

func TestOTPLifecycle(t *testing.T) {
	s := newTestStore(t)

	code := s.GenerateOTP("new@example.com")
	require.Len(t, code, 6)

	assert.ErrorIs(t, s.VerifyOTP("new@example.com", "000000"), ErrOTPInvalid)
	assert.ErrorIs(t, s.VerifyOTP("unknown@example.com", code), ErrOTPInvalid)
	assert.NoError(t, s.VerifyOTP("new@example.com", code))

	s.ConsumeOTP("new@example.com")
	assert.ErrorIs(t, s.VerifyOTP("new@example.com", code), ErrOTPInvalid)
}

func TestOTPExpiry(t *testing.T) {
	s := newTestStore(t)
	s.SetOTPTTL(-time.Second)

	code := s.GenerateOTP("new@example.com")
	assert.ErrorIs(t, s.VerifyOTP("new@example.com", code), ErrOTPExpired)
}

func TestTestimonialOrderingAndVisibility(t *testing.T) {
	s := newTestStore(t)

	first := s.SubmitTestimonial(sessionUser("alice"), "Day Trader", "great", 5)
	second := s.SubmitTestimonial(sessionUser("alice"), "Day Trader", "even better", 4)
	third := s.SubmitTestimonial(sessionUser("alice"), "Day Trader", "meh", 2)

	_, err := s.ReviewTestimonial(first.ID, true)
	require.NoError(t, err)
	_, err = s.ReviewTestimonial(second.ID, true)
	require.NoError(t, err)
	_, err = s.ReviewTestimonial(third.ID, false)
	require.NoError(t, err)

	approved := s.ApprovedTestimonials()
	require.GreaterOrEqual(t, len(approved), 2)
	// Most recently approved first; the rejected one never appears.
	assert.Equal(t, second.ID, approved[0].ID)
	assert.Equal(t, first.ID, approved[1].ID)
	for _, tm := range approved {
		assert.NotEqual(t, third.ID, tm.ID)
	}

	// Authors see pending+approved, never their rejected entries.
	mine := s.TestimonialsByUser("alice")
	ids := make([]int, 0, len(mine))
	for _, tm := range mine {
		ids = append(ids, tm.ID)
	}
	assert.NotContains(t, ids, third.ID)
}

func TestReviewTestimonialRereviewOverwrites(t *testing.T) {
	s := newTestStore(t)

	tm := s.SubmitTestimonial(sessionUser("bob"), "", "solid course", 4)

	approved, err := s.ReviewTestimonial(tm.ID, true)
	require.NoError(t, err)
	firstReview := *approved.ReviewedAt

	rejected, err := s.ReviewTestimonial(tm.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.TestimonialRejected, rejected.Status)
	assert.False(t, rejected.ReviewedAt.Before(firstReview))
}

func TestToggleLikeDoubleToggleRoundTrip(t *testing.T) {
	s := newTestStore(t)

	post := s.CreatePost(sessionUser("alice"), "", "hello traders")

	likes, isLiked, err := s.ToggleLike(post.ID, "bob")
	require.NoError(t, err)
	assert.True(t, isLiked)
	assert.Equal(t, 1, likes)

	likes, isLiked, err = s.ToggleLike(post.ID, "bob")
	require.NoError(t, err)
	assert.False(t, isLiked)
	assert.Equal(t, 0, likes)

	fresh := s.Posts()[0]
	assert.Empty(t, fresh.LikedBy)
}

func TestPostsNewestFirstAndCounterNeverReused(t *testing.T) {
	s := newTestStore(t)

	p1 := s.CreatePost(sessionUser("alice"), "", "first")
	p2 := s.CreatePost(sessionUser("alice"), "", "second")

	feed := s.Posts()
	require.Len(t, feed, 2)
	assert.Equal(t, p2.ID, feed[0].ID)
	assert.Equal(t, p1.ID, feed[1].ID)

	require.NoError(t, s.DeletePost(p2.ID))
	p3 := s.CreatePost(sessionUser("alice"), "", "third")
	assert.Equal(t, 3, p3.ID, "ids keep counting after deletion")
}

func TestCommentsAppendAndDelete(t *testing.T) {
	s := newTestStore(t)

	post := s.CreatePost(sessionUser("alice"), "", "discuss")
	c1, err := s.AddComment(post.ID, sessionUser("bob"), "agree")
	require.NoError(t, err)
	c2, err := s.AddComment(post.ID, sessionUser("carol"), "disagree")
	require.NoError(t, err)

	feed := s.Posts()
	require.Len(t, feed[0].Comments, 2)
	assert.Equal(t, c1.ID, feed[0].Comments[0].ID)

	require.NoError(t, s.DeleteComment(post.ID, c1.ID))
	assert.ErrorIs(t, s.DeleteComment(post.ID, c1.ID), ErrNotFound)

	feed = s.Posts()
	require.Len(t, feed[0].Comments, 1)
	assert.Equal(t, c2.ID, feed[0].Comments[0].ID)
}

func TestChatEntitlementAndLog(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.HasPurchase("testuser", 1))
	assert.False(t, s.HasPurchase("testuser", 3))
	assert.False(t, s.HasPurchase("nobody", 1))

	m1 := s.AppendChatMessage(1, sessionUser("testuser"), "anyone watching nifty?")
	m2 := s.AppendChatMessage(2, sessionUser("testuser"), "greeks question")

	assert.Equal(t, m1.ID+1, m2.ID, "message ids are global across courses")
	require.Len(t, s.ChatMessages(1), 1)
	require.Len(t, s.ChatMessages(2), 1)
	assert.Empty(t, s.ChatMessages(3))
}

func TestPostsReturnsCopies(t *testing.T) {
	s := newTestStore(t)

	post := s.CreatePost(sessionUser("alice"), "", "immutable?")
	_, _, err := s.ToggleLike(post.ID, "bob")
	require.NoError(t, err)

	feed := s.Posts()
	feed[0].LikedBy[0] = "mallory"
	feed[0].Content = "tampered"

	fresh := s.Posts()
	assert.Equal(t, "bob", fresh[0].LikedBy[0])
	assert.Equal(t, "immutable?", fresh[0].Content)
}
