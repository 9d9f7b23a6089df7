package identity

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	digest, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if digest == "" || digest == "secret1" {
		t.Fatalf("digest must be non-empty and not the plaintext: %q", digest)
	}

	if err := VerifyPassword(digest, "secret1"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := VerifyPassword(digest, "secret2"); err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first == second {
		t.Fatal("expected salted digests to differ between calls")
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	if _, err := HashPassword("", bcrypt.MinCost); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	if err := VerifyPassword("", "secret1"); err == nil {
		t.Fatal("expected error for empty digest")
	}
	if err := VerifyPassword("not-a-bcrypt-digest", "secret1"); err == nil {
		t.Fatal("expected error for malformed digest")
	}
}
