package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/apiflux/blogapi/internal/common"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method  = r.Method
		url     = r.URL.RequestURI()
		message = err.Error()
	)

	app.logger.Error(message, slog.String("method", method), slog.String("url", url))
}

// writeErrorResponse emits the failure envelope shared by every JSON
// endpoint: {"success": false, "message": ..., "error": ...?}.
func (app *application) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string, detail string) {
	env := envelope{"success": false, "message": message}
	if detail != "" {
		env["error"] = detail
	}

	if err := app.writeJSON(w, status, env, nil); err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.writeErrorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request", "")
}

func (app *application) badRequestErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error(), "")
}

// failedValidationErrorResponse reports the first failing field only.
func (app *application) failedValidationErrorResponse(w http.ResponseWriter, r *http.Request, ve common.ValidationError) {
	detail := fmt.Sprintf("%s %s", ve.Field, ve.Message)
	app.writeErrorResponse(w, r, http.StatusBadRequest, "validation failed", detail)
}

func (app *application) conflictErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error(), "")
}

func (app *application) invalidCredentialsErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, "invalid email or password", "")
}

func (app *application) authenticationRequiredResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusUnauthorized, "access token is required", "")
}

func (app *application) invalidAuthenticationTokenResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	app.writeErrorResponse(w, r, http.StatusForbidden, "invalid or expired token", "")
}

func (app *application) notFoundErrorResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.writeErrorResponse(w, r, http.StatusNotFound, message, "")
}

func (app *application) routeNotFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusNotFound, fmt.Sprintf("route %s not found", r.URL.Path), "")
}

func (app *application) methodNotAllowedErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusMethodNotAllowed, "method not allowed", "")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded", "")
}
