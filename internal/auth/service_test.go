package auth

import (
	"errors"
	"testing"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryCustomerRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", "9876543210", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	customer := repo.customers["test@example.com"]
	if customer == nil {
		t.Fatalf("customer not found")
	}

	if customer.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterAssignsCustomerRole(t *testing.T) {
	repo := NewInMemoryCustomerRepository()
	service := NewService(repo)

	customer, err := service.Register("Test User", "role@example.com", "", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if customer.Role != RoleCustomer {
		t.Errorf("expected role %s, got %s", RoleCustomer, customer.Role)
	}
	if customer.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := NewInMemoryCustomerRepository()
	service := NewService(repo)

	if _, err := service.Register("First", "dup@example.com", "", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.Register("Second", "dup@example.com", "", "Password@123")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginSuccessAndFailure(t *testing.T) {
	repo := NewInMemoryCustomerRepository()
	service := NewService(repo)

	if _, err := service.Register("Test User", "login@example.com", "", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	customer, err := service.Login("login@example.com", "Password@123")
	if err != nil {
		t.Fatalf("expected login to succeed: %v", err)
	}
	if customer.Email != "login@example.com" {
		t.Errorf("wrong customer returned: %s", customer.Email)
	}

	if _, err := service.Login("login@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Login("nobody@example.com", "Password@123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
