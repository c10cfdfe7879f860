package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthcheck(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, env := ts.get(t, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "available", env["status"])

	info := env["system_info"].(map[string]any)
	assert.Equal(t, "test", info["environment"])
	assert.Equal(t, "connected", info["database"])
}

func TestRegisterUserHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	t.Run("valid registration", func(t *testing.T) {
		status, env := ts.post(t, "/auth/register", map[string]any{
			"username":  "alice",
			"email":     "alice@example.com",
			"password":  "TestPassword123!",
			"full_name": "Alice Example",
		}, nil)
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, true, env["success"])
		assert.Equal(t, "user registered successfully", env["message"])

		data := env["data"].(map[string]any)
		assert.NotEmpty(t, data["access_token"])

		user := data["user"].(map[string]any)
		assert.Equal(t, "alice", user["username"])
		assert.Equal(t, "Alice Example", user["full_name"])
		assert.NotContains(t, user, "password")
	})

	t.Run("duplicate email", func(t *testing.T) {
		status, env := ts.post(t, "/auth/register", map[string]any{
			"username": "alice2",
			"email":    "alice@example.com",
			"password": "TestPassword123!",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, false, env["success"])
		assert.Equal(t, "user with this email or username already exists", env["message"])
	})

	t.Run("validation failure", func(t *testing.T) {
		status, env := ts.post(t, "/auth/register", map[string]any{
			"username": "bob",
			"email":    "not-an-email",
			"password": "TestPassword123!",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "validation failed", env["message"])
		assert.Equal(t, "email must be a valid email address", env["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		status, env := ts.post(t, "/auth/register", "not an object", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, false, env["success"])
	})
}

func TestLoginUserHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	registerTestUser(t, ts, "alice")

	t.Run("valid login", func(t *testing.T) {
		status, env := ts.post(t, "/auth/login", map[string]any{
			"email":    "alice@example.com",
			"password": "TestPassword123!",
		}, nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "login successful", env["message"])

		data := env["data"].(map[string]any)
		assert.NotEmpty(t, data["access_token"])
	})

	// Unknown email and wrong password must be the same response.
	t.Run("wrong password", func(t *testing.T) {
		status, env := ts.post(t, "/auth/login", map[string]any{
			"email":    "alice@example.com",
			"password": "WrongPassword123!",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "invalid email or password", env["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		status, env := ts.post(t, "/auth/login", map[string]any{
			"email":    "nobody@example.com",
			"password": "TestPassword123!",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "invalid email or password", env["message"])
	})
}

func TestCurrentUserHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	token := registerTestUser(t, ts, "alice")

	t.Run("with token", func(t *testing.T) {
		status, env := ts.get(t, "/auth/me", &token)
		assert.Equal(t, http.StatusOK, status)

		user := env["data"].(map[string]any)
		assert.Equal(t, "alice", user["username"])
		assert.Equal(t, "alice@example.com", user["email"])
	})

	t.Run("without token", func(t *testing.T) {
		status, env := ts.get(t, "/auth/me", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "access token is required", env["message"])
	})
}

func TestBlogHandlers(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	authorToken := registerTestUser(t, ts, "author")
	readerToken := registerTestUser(t, ts, "reader")

	var blogID float64

	t.Run("create", func(t *testing.T) {
		status, env := ts.post(t, "/blogs", map[string]any{
			"title":   "First Post",
			"content": "hello world",
			"excerpt": "hello",
		}, &authorToken)
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "blog created successfully", env["message"])

		blog := env["data"].(map[string]any)
		blogID = blog["id"].(float64)
		assert.Equal(t, "First Post", blog["title"])
		assert.Equal(t, "author", blog["author_username"])
		assert.Equal(t, float64(0), blog["likes_count"])
	})

	t.Run("create requires auth", func(t *testing.T) {
		status, env := ts.post(t, "/blogs", map[string]any{
			"title":   "Nope",
			"content": "nope",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "access token is required", env["message"])
	})

	// Paginated listings carry the rows directly under data with the
	// pagination block as a top-level sibling.
	t.Run("list", func(t *testing.T) {
		status, env := ts.get(t, "/blogs", nil)
		assert.Equal(t, http.StatusOK, status)

		blogs := env["data"].([]any)
		assert.Len(t, blogs, 1)

		pagination := env["pagination"].(map[string]any)
		assert.Equal(t, float64(1), pagination["page"])
		assert.Equal(t, float64(10), pagination["limit"])
		assert.Equal(t, float64(1), pagination["total"])
		assert.Equal(t, float64(1), pagination["totalPages"])
	})

	t.Run("get by id", func(t *testing.T) {
		status, env := ts.get(t, fmt.Sprintf("/blogs/%d", int(blogID)), nil)
		assert.Equal(t, http.StatusOK, status)

		blog := env["data"].(map[string]any)
		assert.Equal(t, "First Post", blog["title"])
		assert.NotContains(t, blog, "is_liked")
	})

	t.Run("get missing blog", func(t *testing.T) {
		status, env := ts.get(t, "/blogs/999999", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "blog not found", env["message"])
	})

	t.Run("my blogs", func(t *testing.T) {
		status, env := ts.get(t, "/blogs/my", &authorToken)
		assert.Equal(t, http.StatusOK, status)

		blogs := env["data"].([]any)
		assert.Len(t, blogs, 1)
		assert.Contains(t, env, "pagination")

		status, _ = ts.get(t, "/blogs/my", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("update by owner", func(t *testing.T) {
		status, env := ts.put(t, fmt.Sprintf("/blogs/%d", int(blogID)), map[string]any{
			"title": "Updated Title",
		}, &authorToken)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "blog updated successfully", env["message"])

		blog := env["data"].(map[string]any)
		assert.Equal(t, "Updated Title", blog["title"])
		assert.Equal(t, "hello world", blog["content"])
	})

	t.Run("update with no fields", func(t *testing.T) {
		status, env := ts.put(t, fmt.Sprintf("/blogs/%d", int(blogID)), map[string]any{}, &authorToken)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "no fields to update", env["message"])
	})

	t.Run("update by non-owner", func(t *testing.T) {
		status, env := ts.put(t, fmt.Sprintf("/blogs/%d", int(blogID)), map[string]any{
			"title": "Hijacked",
		}, &readerToken)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "blog not found or you are not authorized to update it", env["message"])
	})

	t.Run("toggle like", func(t *testing.T) {
		path := fmt.Sprintf("/blogs/%d/like", int(blogID))

		status, env := ts.post(t, path, nil, &readerToken)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "blog liked successfully", env["message"])
		assert.NotContains(t, env, "data")

		status, env = ts.post(t, path, nil, &readerToken)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "blog unliked successfully", env["message"])
	})

	t.Run("comments", func(t *testing.T) {
		path := fmt.Sprintf("/blogs/%d/comments", int(blogID))

		status, env := ts.post(t, path, map[string]any{"content": "nice post"}, &readerToken)
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "comment added successfully", env["message"])

		comment := env["data"].(map[string]any)
		assert.Equal(t, "nice post", comment["content"])
		assert.Equal(t, "reader", comment["username"])

		status, env = ts.get(t, path, nil)
		assert.Equal(t, http.StatusOK, status)
		comments := env["data"].([]any)
		assert.Len(t, comments, 1)
		assert.Equal(t, float64(1), env["pagination"].(map[string]any)["total"])
	})

	t.Run("delete by non-owner", func(t *testing.T) {
		status, env := ts.delete(t, fmt.Sprintf("/blogs/%d", int(blogID)), &readerToken)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "blog not found or you are not authorized to delete it", env["message"])
	})

	t.Run("delete by owner", func(t *testing.T) {
		status, env := ts.delete(t, fmt.Sprintf("/blogs/%d", int(blogID)), &authorToken)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "blog deleted successfully", env["message"])

		status, _ = ts.get(t, fmt.Sprintf("/blogs/%d", int(blogID)), nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestDraftVisibilityOverAPI(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	authorToken := registerTestUser(t, ts, "author")
	readerToken := registerTestUser(t, ts, "reader")

	status, env := ts.post(t, "/blogs", map[string]any{
		"title":        "Secret Draft",
		"content":      "not ready",
		"is_published": false,
	}, &authorToken)
	assert.Equal(t, http.StatusCreated, status)

	blogID := int(env["data"].(map[string]any)["id"].(float64))
	path := fmt.Sprintf("/blogs/%d", blogID)

	t.Run("hidden from listing", func(t *testing.T) {
		_, env := ts.get(t, "/blogs", nil)
		blogs := env["data"].([]any)
		assert.Empty(t, blogs)
	})

	t.Run("hidden from anonymous reads", func(t *testing.T) {
		status, _ := ts.get(t, path, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("hidden from other users", func(t *testing.T) {
		status, _ := ts.get(t, path, &readerToken)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("visible to the owner", func(t *testing.T) {
		status, env := ts.get(t, path, &authorToken)
		assert.Equal(t, http.StatusOK, status)

		blog := env["data"].(map[string]any)
		assert.Equal(t, false, blog["is_published"])
	})
}

func TestRouteNotFound(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, env := ts.get(t, "/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "route /does-not-exist not found", env["message"])
}

func TestMethodNotAllowed(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, env := ts.delete(t, "/health", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, "method not allowed", env["message"])
}
