package crypto

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	pw := []byte("p@ssw0rd")

	h1, err := HashPassword(pw, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword(pw, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword(2): %v", err)
	}
	if len(h1) == 0 || len(h2) == 0 {
		t.Fatalf("empty hash")
	}
	if bytes.Equal(h1, h2) {
		t.Fatalf("two hashes of the same password are equal — salt missing")
	}
}

func TestHashPassword_CostFallback(t *testing.T) {
	t.Parallel()

	h, err := HashPassword([]byte("pw"), 0)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	cost, err := bcrypt.Cost(h)
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost != DefaultCost {
		t.Fatalf("cost=%d, want=%d", cost, DefaultCost)
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	pw := []byte("correct horse battery staple")
	hash, err := HashPassword(pw, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !VerifyPassword(pw, hash) {
		t.Fatalf("VerifyPassword: expected true for correct password")
	}
	if VerifyPassword([]byte("wrong"), hash) {
		t.Fatalf("VerifyPassword: expected false for wrong password")
	}
	if VerifyPassword([]byte{}, hash) {
		t.Fatalf("VerifyPassword: expected false for empty password")
	}
	if VerifyPassword(pw, []byte("not-a-bcrypt-hash")) {
		t.Fatalf("VerifyPassword: expected false for garbage hash")
	}
}
