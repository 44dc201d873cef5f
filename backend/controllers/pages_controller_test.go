package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicPages(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/", "/courses", "/login", "/signup", "/enroll", "/forgetPassword", "/verifyOTP"} {
		resp := request(t, app, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestDashboardRedirects(t *testing.T) {
	app, _ := newTestApp(t)

	// Anonymous visitors are sent to the login page.
	resp := request(t, app, http.MethodGet, "/dashboard", nil, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp = request(t, app, http.MethodGet, "/admin/dashboard", nil, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// Users and admins each get bounced to their own dashboard.
	user := login(t, app, "testuser", "password123")
	resp = request(t, app, http.MethodGet, "/admin/dashboard", nil, user)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	admin := login(t, app, "admin", "password123")
	resp = request(t, app, http.MethodGet, "/dashboard", nil, admin)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/dashboard", resp.Header.Get("Location"))

	resp = request(t, app, http.MethodGet, "/dashboard", nil, user)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, http.MethodGet, "/admin/dashboard", nil, admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// A logged-in visitor opening /login is sent home.
	resp = request(t, app, http.MethodGet, "/login", nil, user)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	// The dashboard page redirects must not leak into the admin console
	// API, which keeps its JSON guard.
	resp = request(t, app, http.MethodPost, "/admin/toggle-live", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp = request(t, app, http.MethodPost, "/admin/toggle-live", nil, user)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
