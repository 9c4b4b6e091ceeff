package middleware

import (
	"testing"
	"time"

	"github.com/quickhire/quickhire-api/internal/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.JwtSecret = "test-secret"
	config.Issuer = "quickhire"
	Init()

	token, err := GenerateToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("expected admin, got %s", claims.Username)
	}
	if !claims.IsAdmin {
		t.Fatal("expected admin claim")
	}
	if claims.Issuer != "quickhire" {
		t.Fatalf("expected quickhire issuer, got %s", claims.Issuer)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	config.JwtSecret = "test-secret"
	Init()

	token, err := GenerateToken("admin", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := ParseToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	config.JwtSecret = "test-secret"
	Init()
	token, err := GenerateToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	config.JwtSecret = "other-secret"
	Init()
	if _, err := ParseToken(token); err == nil {
		t.Fatal("expected error for token signed with a different key")
	}
}
