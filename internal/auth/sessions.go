package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// CookieName identifies the session cookie set on login and cleared on
// logout.
const CookieName = "portfolio_session"

const sessionTTL = 24 * time.Hour

// Sessions is the server-side session store: opaque token to user id,
// expiring after 24 hours of no re-login.
type Sessions struct {
	store *cache.Cache
}

func NewSessions() *Sessions {
	return &Sessions{store: cache.New(sessionTTL, time.Hour)}
}

// Create opens a session for the given user and returns its token.
func (s *Sessions) Create(userID int64) string {
	token := uuid.NewString()
	s.store.Set(token, userID, cache.DefaultExpiration)
	return token
}

// UserID resolves a session token to the user it belongs to.
func (s *Sessions) UserID(token string) (int64, bool) {
	v, ok := s.store.Get(token)
	if !ok {
		return 0, false
	}
	return v.(int64), true
}

// Destroy ends the session. Unknown tokens are ignored.
func (s *Sessions) Destroy(token string) {
	s.store.Delete(token)
}
