package utils

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("acct-1", "admin@clinic.test", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parsed, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !parsed.Valid {
		t.Error("freshly issued token should be valid")
	}

	id, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken: %v", err)
	}
	if id != "acct-1" {
		t.Errorf("subject = %s, want acct-1", id)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("acct-1", "admin@clinic.test", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ExtractIDFromToken(token); err == nil {
		t.Error("expired token must be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("acct-1", "admin@clinic.test", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := ExtractIDFromToken(tampered); err == nil {
		t.Error("tampered token must be rejected")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Error("hash must be deterministic")
	}
	if a == HashToken("other-token") {
		t.Error("different tokens must hash differently")
	}
	if len(a) != 64 {
		t.Errorf("hex SHA-256 length = %d, want 64", len(a))
	}
}
