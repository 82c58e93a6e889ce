// Package auth implements the session-cookie gate in front of the admin
// routes: bcrypt password handling plus an in-memory TTL session store.
// Sessions are memory-backed in every storage configuration and do not
// survive a restart.
package auth

import (
	"errors"
	"net/http"

	"github.com/mdobak/go-xerrors"
	"golang.org/x/crypto/bcrypt"

	"github.com/kartiksharma/portfolio/internal/web"
	"github.com/kartiksharma/portfolio/models"
)

const UserCtxKey = "user_data"

var NotAuthenticatedUser = xerrors.Message("Not authenticated user")

func HashPassword(plainTextPassword string) ([]byte, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), 12)
	if err != nil {
		return nil, xerrors.New(err)
	}
	return hashedPassword, nil
}

func PasswordMatches(hashedPassword []byte, plainTextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(hashedPassword, []byte(plainTextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, xerrors.New(err)
	}
	return true, nil
}

func GetAuthenticatedUser(r *http.Request) (*models.User, error) {
	user, ok := web.GetValueFromContext[*models.User](r, UserCtxKey)
	if !ok {
		return nil, NotAuthenticatedUser
	}
	return user, nil
}

func SetAuthenticatedUser(r *http.Request, user *models.User) *http.Request {
	return web.AddValueToContext(r, UserCtxKey, user)
}

func IsUserAuthenticated(r *http.Request) bool {
	_, err := GetAuthenticatedUser(r)
	return err == nil
}
