package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessToken_Claims(t *testing.T) {
	access, err := NewAccessToken("secret", 42, []string{"ROLE_PROFESSIONAL"}, 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if access.Token == "" {
		t.Fatalf("empty token")
	}
	if until := time.Until(access.Exp); until <= 0 || until > 15*time.Minute {
		t.Fatalf("unexpected expiry: %v", access.Exp)
	}

	tok, err := jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse issued token: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Fatalf("sub claim = %v, want 42", claims["sub"])
	}
	roles, _ := claims["roles"].([]interface{})
	if len(roles) != 1 || roles[0] != "ROLE_PROFESSIONAL" {
		t.Fatalf("roles claim = %v", claims["roles"])
	}
}

func TestNewAccessToken_WrongSecretRejected(t *testing.T) {
	access, err := NewAccessToken("secret", 1, []string{"ROLE_USER"}, 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	tok, err := jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	})
	if err == nil && tok.Valid {
		t.Fatalf("token validated with wrong secret")
	}
}
