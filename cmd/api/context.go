package main

import (
	"context"
	"net/http"

	"github.com/apiflux/blogapi/internal/userservice"
)

type contextKey string

const identityContextKey = contextKey("identity")

// withIdentity attaches the verified caller identity to the request.
// Anonymous requests never get one; downstream code treats a nil
// identity as "not authenticated".
func (app *application) withIdentity(r *http.Request, id *userservice.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityContextKey, id)
	return r.WithContext(ctx)
}

func (app *application) getIdentity(r *http.Request) *userservice.Identity {
	id, ok := r.Context().Value(identityContextKey).(*userservice.Identity)
	if !ok {
		return nil
	}
	return id
}

// viewerID adapts the optional identity to the optional viewer id the
// blog service operates on.
func (app *application) viewerID(r *http.Request) *int {
	id := app.getIdentity(r)
	if id == nil {
		return nil
	}
	return &id.UserID
}
