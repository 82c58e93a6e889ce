package auth

import "testing"

func TestSessionLifecycle(t *testing.T) {
	sessions := NewSessions()

	token := sessions.Create(42)
	if token == "" {
		t.Fatal("expected a non-empty session token")
	}

	userID, ok := sessions.UserID(token)
	if !ok {
		t.Fatal("expected the token to resolve")
	}
	if userID != 42 {
		t.Errorf("UserID = %d, want 42", userID)
	}

	sessions.Destroy(token)
	if _, ok := sessions.UserID(token); ok {
		t.Error("expected the token to be gone after Destroy")
	}
}

func TestSessionTokensAreUnique(t *testing.T) {
	sessions := NewSessions()

	first := sessions.Create(1)
	second := sessions.Create(1)
	if first == second {
		t.Error("two sessions for the same user must get distinct tokens")
	}
}

func TestUnknownToken(t *testing.T) {
	sessions := NewSessions()

	if _, ok := sessions.UserID("nope"); ok {
		t.Error("unknown token must not resolve")
	}

	// Destroying an unknown token is a no-op.
	sessions.Destroy("nope")
}
