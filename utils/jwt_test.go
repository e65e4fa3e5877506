package utils

import "testing"

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := GenerateAccessToken(42, "jane@example.com", "jane")
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	claims, err := ParseToken(tokenString)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if got := claims["userId"].(float64); got != 42 {
		t.Errorf("userId claim = %v, want 42", got)
	}
	if got := claims["email"].(string); got != "jane@example.com" {
		t.Errorf("email claim = %q", got)
	}
	if got := claims["username"].(string); got != "jane" {
		t.Errorf("username claim = %q", got)
	}
}

func TestRefreshTokensCarryUniqueJTI(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	a, err := GenerateRefreshToken(7)
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}
	b, err := GenerateRefreshToken(7)
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}

	ca, err := ParseToken(a)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	cb, err := ParseToken(b)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if ca["jti"] == cb["jti"] {
		t.Error("two refresh tokens share the same jti")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	tokenString, err := GenerateAccessToken(1, "a@b.c", "a")
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-two")
	if _, err := ParseToken(tokenString); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
