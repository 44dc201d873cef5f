package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"tradeacademy/backend/config"
	"tradeacademy/backend/middleware"
	"tradeacademy/backend/routes"
	"tradeacademy/backend/store"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	cfg := &config.Config{
		ServerPort:     "8080",
		SessionExpiry:  time.Hour,
		OTPTTL:         5 * time.Minute,
		AllowedOrigins: "*",
	}

	st := store.New(nil, "")
	sessions := middleware.NewSessionStore(cfg)

	app := fiber.New()
	routes.SetupRoutes(app, st, sessions, cfg)
	return app, st
}

func request(t *testing.T, app *fiber.App, method, path string, body interface{}, cookies []*http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

// login authenticates and returns the session cookies for later calls.
func login(t *testing.T, app *fiber.App, identifier, password string) []*http.Cookie {
	t.Helper()

	resp := request(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"loginIdentifier": identifier,
		"password":        password,
		"loginType":       "username",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)
	resp.Body.Close()
	return cookies
}
