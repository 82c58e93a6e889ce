package auth

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := PasswordMatches(hash, "correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected the right password to match")
	}

	ok, err = PasswordMatches(hash, "wrong password")
	if err != nil {
		t.Fatalf("a mismatch is not an error: %v", err)
	}
	if ok {
		t.Error("expected the wrong password to be rejected")
	}
}

func TestPasswordMatchesGarbageHash(t *testing.T) {
	_, err := PasswordMatches([]byte("not a bcrypt hash"), "anything")
	if err == nil {
		t.Error("expected an error for a malformed hash")
	}
}
