package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/apiflux/blogapi/internal/blogservice"
	"github.com/apiflux/blogapi/internal/common"
	"github.com/apiflux/blogapi/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &Config{
		Port:        ":0",
		Environment: "test",
	}
	cfg.JWT.Secret = "test-secret"
	cfg.Limiter.Enabled = false

	templates, err := newTemplateCache()
	assert.NoError(t, err)

	tokens := userservice.NewTokenMaker(cfg.JWT.Secret)

	app := &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		tokens:      tokens,
		userService: userservice.NewUserService(db, tokens),
		blogService: blogservice.NewBlogService(db),
		templates:   templates,
		started:     time.Now(),
	}

	return app, db
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func readResponse(t *testing.T, res *http.Response) (int, envelope) {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, env
}

func (ts *testServer) do(t *testing.T, method, path string, payload any, token *string) (int, envelope) {
	var body io.Reader
	if payload != nil {
		js, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(js)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) get(t *testing.T, path string, token *string) (int, envelope) {
	return ts.do(t, http.MethodGet, path, nil, token)
}

func (ts *testServer) post(t *testing.T, path string, payload any, token *string) (int, envelope) {
	return ts.do(t, http.MethodPost, path, payload, token)
}

func (ts *testServer) put(t *testing.T, path string, payload any, token *string) (int, envelope) {
	return ts.do(t, http.MethodPut, path, payload, token)
}

func (ts *testServer) delete(t *testing.T, path string, token *string) (int, envelope) {
	return ts.do(t, http.MethodDelete, path, nil, token)
}

// registerTestUser creates an account through the API and returns its
// access token.
func registerTestUser(t *testing.T, ts *testServer, username string) string {
	status, env := ts.post(t, "/auth/register", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "TestPassword123!",
	}, nil)
	assert.Equal(t, http.StatusCreated, status)

	data, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected register response: %v", env)
	}

	token, ok := data["access_token"].(string)
	if !ok || token == "" {
		t.Fatalf("missing access token in register response: %v", env)
	}

	return token
}
