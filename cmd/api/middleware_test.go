package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A missing Authorization header and a bad one behave differently on
// routes where authentication is optional: absence means anonymous,
// presence must verify.
func TestAuthenticateOptional(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	t.Run("no header proceeds anonymously", func(t *testing.T) {
		status, env := ts.get(t, "/blogs", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, env["success"])
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		garbage := "not-a-real-token"
		status, env := ts.get(t, "/blogs", &garbage)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "invalid or expired token", env["message"])
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		token := registerTestUser(t, ts, "alice")
		tampered := token + "x"

		status, env := ts.get(t, "/blogs", &tampered)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "invalid or expired token", env["message"])
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/blogs", nil)
		assert.NoError(t, err)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		res, err := ts.Client().Do(req)
		assert.NoError(t, err)

		status, env := readResponse(t, res)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "invalid or expired token", env["message"])
	})

	t.Run("valid token is accepted", func(t *testing.T) {
		token := registerTestUser(t, ts, "bob")

		status, env := ts.get(t, "/blogs", &token)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, env["success"])
	})
}

func TestRequireAuth(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, env := ts.post(t, "/blogs", map[string]any{
		"title":   "Nope",
		"content": "nope",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "access token is required", env["message"])
}

func TestRateLimit(t *testing.T) {
	app, _ := newTestApplication(t)
	app.config.Limiter.Enabled = true
	app.config.Limiter.RPS = 2
	app.config.Limiter.Burst = 4

	ts := newTestServer(t, app.routes())

	limited := false
	for i := 0; i < 10; i++ {
		status, _ := ts.get(t, "/health", nil)
		if status == http.StatusTooManyRequests {
			limited = true
			break
		}
		assert.Equal(t, http.StatusOK, status)
	}

	assert.True(t, limited)
}
