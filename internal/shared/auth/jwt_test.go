package auth

import (
	"strings"
	"testing"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignToken("google:123", "parent@example.com", "Test Parent", "")
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected JWT with 3 segments, got %q", token)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.Subject != "google:123" {
		t.Fatalf("expected sub google:123, got %s", claims.Subject)
	}
	if claims.Email != "parent@example.com" {
		t.Fatalf("expected email, got %s", claims.Email)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignToken("user-1", "", "", "")
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	if _, err := VerifyToken(token + "x"); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := SignToken("user-1", "", "", "")
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-b")
	if _, err := VerifyToken(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestSignRequiresSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := SignToken("", "", "", ""); err == nil {
		t.Fatal("expected error for empty subject")
	}
}
