package crypto

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if hash == "" {
		t.Fatal("HashPassword() returned empty string")
	}

	// bcrypt digests carry the cost in the prefix: $2a$10$...
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Errorf("HashPassword() digest prefix = %q, want bcrypt cost 10", hash[:7])
	}
}

func TestCheckPasswordCorrect(t *testing.T) {
	password := "my-secure-password"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if !CheckPassword(password, hash) {
		t.Error("CheckPassword() returned false for correct password")
	}
}

func TestCheckPasswordWrong(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if CheckPassword("wrong-password", hash) {
		t.Error("CheckPassword() returned true for wrong password")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	if CheckPassword("password", "not-a-bcrypt-digest") {
		t.Error("CheckPassword() returned true for malformed digest")
	}
}

func TestHashPasswordProducesDifferentDigests(t *testing.T) {
	password := "same-password"

	hash1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("HashPassword() produced identical digests for same password (salt should differ)")
	}
}
