package main

import (
	"errors"
	"net/http"

	"github.com/apiflux/blogapi/internal/common"
	"github.com/apiflux/blogapi/internal/userservice"
)

func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string  `json:"username"`
		Email    string  `json:"email"`
		Password string  `json:"password"`
		FullName *string `json:"full_name"`
	}

	if err := app.parseJSON(w, r, &input); err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, token, err := app.userService.RegisterUser(r.Context(), input.Username, input.Email, input.Password, input.FullName)
	if err != nil {
		var ve common.ValidationError
		switch {
		case errors.As(err, &ve):
			app.failedValidationErrorResponse(w, r, ve)
		case errors.Is(err, userservice.ErrDuplicateUser):
			app.conflictErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{
		"success": true,
		"message": "user registered successfully",
		"data": envelope{
			"access_token": token,
			"user":         user,
		},
	}

	if err := app.writeJSON(w, http.StatusCreated, env, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) loginUserHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := app.parseJSON(w, r, &input); err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, token, err := app.userService.LoginUser(r.Context(), input.Email, input.Password)
	if err != nil {
		var ve common.ValidationError
		switch {
		case errors.As(err, &ve):
			app.failedValidationErrorResponse(w, r, ve)
		case errors.Is(err, userservice.ErrInvalidCredentials):
			app.invalidCredentialsErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{
		"success": true,
		"message": "login successful",
		"data": envelope{
			"access_token": token,
			"user":         user,
		},
	}

	if err := app.writeJSON(w, http.StatusOK, env, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// currentUserHandler re-reads the account so the response reflects the
// row as stored, not the claims baked into the token.
func (app *application) currentUserHandler(w http.ResponseWriter, r *http.Request) {
	identity := app.getIdentity(r)

	user, err := app.userService.GetUserByID(r.Context(), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "user not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{
		"success": true,
		"data":    user,
	}

	if err := app.writeJSON(w, http.StatusOK, env, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
