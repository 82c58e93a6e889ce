package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kartiksharma/portfolio/internal/auth"
	"github.com/kartiksharma/portfolio/internal/store"
)

// authenticate resolves the session cookie, if any, to the admin user and
// stashes it in the request context. Anonymous requests pass through
// untouched; gating happens in requireAuthenticatedUser.
func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Cookie")

		cookie, err := r.Cookie(auth.CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := app.sessions.UserID(cookie.Value)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := app.store.User(userID)
		if err != nil {
			if errors.Is(err, store.ErrNoRecord) {
				// The session outlived the account; drop it.
				app.sessions.Destroy(cookie.Value)
				next.ServeHTTP(w, r)
				return
			}
			app.internalErrorResponse(w, r, err)
			return
		}

		next.ServeHTTP(w, auth.SetAuthenticatedUser(r, user))
	})
}

func (app *application) requireAuthenticatedUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !auth.IsUserAuthenticated(r) {
			app.authenticationRequiredResponse(w, r)
			return
		}
		next(w, r)
	}
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.internalErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
