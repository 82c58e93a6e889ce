package main

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/kartiksharma/portfolio/internal/auth"
	"github.com/kartiksharma/portfolio/internal/store"
	"github.com/kartiksharma/portfolio/internal/validator"
	"github.com/kartiksharma/portfolio/models"
)

// registerUser creates the admin account. Open self-registration is
// prevented by a deployment-time shared secret; a successful registration
// logs the new user in immediately.
func (app *application) registerUser(w http.ResponseWriter, r *http.Request) {
	type registerUserPayload struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Secret   string `json:"secret"`
	}

	var payload registerUserPayload
	if err := app.readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	payload.Username = strings.TrimSpace(payload.Username)

	v := validator.New()
	v.CheckNotBlank(payload.Username, "username", "must be provided")
	v.CheckNotBlank(payload.Password, "password", "must be provided")
	v.Check(len(payload.Password) >= 8, "password", "must be at least 8 characters long")

	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	if app.config.RegistrationSecret == "" {
		app.errorResponse(w, r, http.StatusForbidden, &AppError{
			ErrorMessage: "Registration is disabled",
		})
		return
	}
	if subtle.ConstantTimeCompare([]byte(payload.Secret), []byte(app.config.RegistrationSecret)) != 1 {
		app.errorResponse(w, r, http.StatusForbidden, &AppError{
			ErrorMessage: "Invalid registration secret",
		})
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	user, err := app.store.CreateUser(payload.Username, hash)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateUsername):
			v.AddError("username", "Username is already in use")
			app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
			return
		default:
			app.internalErrorResponse(w, r, err)
			return
		}
	}

	app.setSessionCookie(w, user)

	if err := app.writeJSON(w, http.StatusOK, user, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) loginUser(w http.ResponseWriter, r *http.Request) {
	type loginUserPayload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var payload loginUserPayload
	if err := app.readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	v.CheckNotBlank(payload.Username, "username", "must be provided")
	v.CheckNotBlank(payload.Password, "password", "must be provided")

	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	user, err := app.store.UserByUsername(payload.Username)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoRecord):
			app.errorResponse(w, r, http.StatusUnauthorized, &AppError{
				ErrorMessage: "Invalid credentials",
			})
			return
		default:
			app.internalErrorResponse(w, r, err)
			return
		}
	}

	match, err := auth.PasswordMatches(user.Password, payload.Password)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}
	if !match {
		app.errorResponse(w, r, http.StatusUnauthorized, &AppError{
			ErrorMessage: "Invalid credentials",
		})
		return
	}

	app.setSessionCookie(w, user)

	if err := app.writeJSON(w, http.StatusOK, user, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) logoutUser(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		app.sessions.Destroy(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if err := app.writeJSON(w, http.StatusOK, envelope{"success": true}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) currentUser(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetAuthenticatedUser(r)
	if err != nil {
		app.authenticationRequiredResponse(w, r)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, user, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) setSessionCookie(w http.ResponseWriter, user *models.User) {
	token := app.sessions.Create(user.ID)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   app.config.Env == "production",
	})
}
