package services

import (
	"errors"
	"testing"
)

func TestAdminRegister(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	admin, err := svc.Register("Jane", "Jane@Example.com", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if admin.ID == 0 {
		t.Error("expected a persisted id")
	}
	if admin.Email != "jane@example.com" {
		t.Errorf("email not lowercased: %q", admin.Email)
	}
	if admin.Role != "admin" {
		t.Errorf("unexpected role: %q", admin.Role)
	}
	if admin.Password == "secret1" {
		t.Error("password stored in plaintext")
	}
	if !svc.CheckPassword("secret1", admin.Password) {
		t.Error("stored hash does not verify the original password")
	}
}

func TestAdminRegisterDuplicateEmail(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	if _, err := svc.Register("Jane", "jane@example.com", "secret1"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	// Same email with different case must still collide.
	_, err := svc.Register("Other", "JANE@example.com", "secret2")
	if !errors.Is(err, ErrAdminExists) {
		t.Errorf("expected ErrAdminExists, got %v", err)
	}
}

func TestAdminLogin(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	if _, err := svc.Register("Jane", "jane@example.com", "secret1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	admin, err := svc.Login("jane@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if admin.LastLoginAt == nil {
		t.Error("expected last_login_at to be recorded")
	}
}

func TestAdminLoginFailures(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	if _, err := svc.Register("Jane", "jane@example.com", "secret1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable.
	if _, err := svc.Login("nobody@example.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("jane@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestGetAdminByID(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	admin, err := svc.Register("Jane", "jane@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, err := svc.GetAdminByID(admin.ID)
	if err != nil {
		t.Fatalf("GetAdminByID failed: %v", err)
	}
	if got.Email != admin.Email {
		t.Errorf("got email %q, want %q", got.Email, admin.Email)
	}

	if _, err := svc.GetAdminByID(9999); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("expected ErrAdminNotFound, got %v", err)
	}
}
