package utils

import "testing"

func TestAuthCacheTTLWithinTokenLifetime(t *testing.T) {
	if AuthCacheTTL <= 0 {
		t.Fatal("auth cache TTL must be positive")
	}
	// Cached sessions must never outlive the token they stand in for; an
	// expired cache entry just falls back to the token-hash lookup.
	if AuthCacheTTL > TokenTTL {
		t.Errorf("AuthCacheTTL %v exceeds TokenTTL %v", AuthCacheTTL, TokenTTL)
	}
}
