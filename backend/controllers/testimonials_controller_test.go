package controllers_test

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeacademy/backend/models"
)

func submitTestimonial(t *testing.T, app *fiber.App, cookies []*http.Cookie, message string, rating int) *http.Response {
	t.Helper()
	return request(t, app, http.MethodPost, "/api/testimonials/submit", fiber.Map{
		"message":  message,
		"rating":   rating,
		"userRole": "Swing Trader",
	}, cookies)
}

func TestSubmitTestimonialValidation(t *testing.T) {
	app, _ := newTestApp(t)

	// Unauthenticated callers are rejected outright.
	resp := submitTestimonial(t, app, nil, "great", 5)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	user := login(t, app, "testuser", "password123")

	resp = submitTestimonial(t, app, user, "great", 6)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = submitTestimonial(t, app, user, "great", 0)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = submitTestimonial(t, app, user, strings.Repeat("x", 501), 4)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = submitTestimonial(t, app, user, "   ", 4)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// No record was created by any rejected submission.
	var mine struct {
		Testimonials []models.Testimonial `json:"testimonials"`
	}
	resp = request(t, app, http.MethodGet, "/api/testimonials/mine", nil, user)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &mine)
	for _, tm := range mine.Testimonials {
		assert.NotEqual(t, models.TestimonialPending, tm.Status, "rejected submissions must not persist")
	}
}

func TestModerationFlow(t *testing.T) {
	app, _ := newTestApp(t)
	user := login(t, app, "testuser", "password123")
	admin := login(t, app, "admin", "password123")

	var created struct {
		Testimonial models.Testimonial `json:"testimonial"`
	}
	resp := submitTestimonial(t, app, user, "changed how I trade", 5)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &created)
	first := created.Testimonial.ID

	resp = submitTestimonial(t, app, user, "spam spam spam", 1)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &created)
	second := created.Testimonial.ID

	// Moderation is admin-only.
	resp = request(t, app, http.MethodPost, "/admin/testimonials/approve/1", nil, user)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = request(t, app, http.MethodPost, "/admin/testimonials/approve/"+strconv.Itoa(first), nil, admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = request(t, app, http.MethodPost, "/admin/testimonials/reject/"+strconv.Itoa(second), nil, admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Approved list: newest review first, rejected entry absent.
	var listing struct {
		Testimonials []models.Testimonial `json:"testimonials"`
	}
	resp = request(t, app, http.MethodGet, "/api/testimonials/approved", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &listing)
	require.NotEmpty(t, listing.Testimonials)
	assert.Equal(t, first, listing.Testimonials[0].ID)
	for _, tm := range listing.Testimonials {
		assert.NotEqual(t, second, tm.ID)
	}

	// The author no longer sees the rejected entry either.
	resp = request(t, app, http.MethodGet, "/api/testimonials/mine", nil, user)
	decode(t, resp, &listing)
	for _, tm := range listing.Testimonials {
		assert.NotEqual(t, second, tm.ID)
	}
}

func TestApproveUnknownTestimonial(t *testing.T) {
	app, _ := newTestApp(t)
	admin := login(t, app, "admin", "password123")

	resp := request(t, app, http.MethodPost, "/admin/testimonials/approve/9999", nil, admin)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

