package auth

import (
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	userID := uuid.New().String()
	email := "test@example.com"

	// Generate token
	token, err := GenerateToken(userID, email, "Test User", RoleCustomer)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	// Validate token
	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if claims.UserID != userID {
		t.Fatalf("Expected userID %s, got %s", userID, claims.UserID)
	}
	if claims.Email != email {
		t.Fatalf("Expected email %s, got %s", email, claims.Email)
	}
	if claims.Name != "Test User" {
		t.Fatalf("Expected name Test User, got %s", claims.Name)
	}
	if claims.Role != RoleCustomer {
		t.Fatalf("Expected role %s, got %s", RoleCustomer, claims.Role)
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateToken("", "a@b.com", "A", RoleCustomer); err == nil {
		t.Fatal("expected error for empty userID")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
