package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_NotPlaintext(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("hash equals plaintext")
	}
	if !VerifyPassword(hash, "secret123") {
		t.Fatalf("VerifyPassword rejected correct password")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatalf("VerifyPassword accepted wrong password")
	}
}

func TestVerifyPassword_BadHash(t *testing.T) {
	if VerifyPassword("not-a-bcrypt-hash", "anything") {
		t.Fatalf("VerifyPassword accepted malformed hash")
	}
}
