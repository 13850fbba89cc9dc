package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
)

// TestLogin_AdminWithoutPassword verifies that an admin with no stored
// password logs in with any (or no) password.
func TestLogin_AdminWithoutPassword(t *testing.T) {
	db := setupTestDB(t)
	admin := models.User{ID: "admin1", Name: "Admin", Role: models.RoleAdmin}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("failed to insert admin: %v", err)
	}

	svc := NewAuthService(db)
	token, user, err := svc.Login(context.Background(), "Admin", models.RoleAdmin, "")
	if err != nil {
		t.Fatalf("expected login to succeed, got: %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if user.ID != "admin1" {
		t.Errorf("expected user admin1, got: %s", user.ID)
	}
}

// TestLogin_AdminWithPassword verifies that a stored admin password is
// enforced.
func TestLogin_AdminWithPassword(t *testing.T) {
	db := setupTestDB(t)
	seedUsers(t, db)
	svc := NewAuthService(db)

	if _, _, err := svc.Login(context.Background(), "Admin", models.RoleAdmin, "wrong"); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("expected ErrLoginFailed, got: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "Admin", models.RoleAdmin, "admin"); err != nil {
		t.Fatalf("expected login to succeed, got: %v", err)
	}
}

// TestLogin_Employee covers the seeded employee against right and wrong
// passwords, and case-insensitive name matching.
func TestLogin_Employee(t *testing.T) {
	db := setupTestDB(t)
	seedUsers(t, db)
	svc := NewAuthService(db)

	if _, _, err := svc.Login(context.Background(), "Ravi Kumar", models.RoleEmployee, "password1"); err != nil {
		t.Fatalf("expected login to succeed, got: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ravi kumar", models.RoleEmployee, "password1"); err != nil {
		t.Fatalf("expected case-insensitive login to succeed, got: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "Ravi Kumar", models.RoleEmployee, "wrong"); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("expected ErrLoginFailed, got: %v", err)
	}
}

// TestLogin_RoleMismatch verifies that name and role must both match.
func TestLogin_RoleMismatch(t *testing.T) {
	db := setupTestDB(t)
	seedUsers(t, db)
	svc := NewAuthService(db)

	if _, _, err := svc.Login(context.Background(), "Ravi Kumar", models.RoleAdmin, "password1"); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("expected ErrLoginFailed, got: %v", err)
	}
}

// TestSessionLifecycle checks token resolution, logout and session
// invalidation when the account disappears.
func TestSessionLifecycle(t *testing.T) {
	db := setupTestDB(t)
	seedUsers(t, db)
	svc := NewAuthService(db)

	token, _, err := svc.Login(context.Background(), "Ravi Kumar", models.RoleEmployee, "password1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	user, err := svc.UserForToken(context.Background(), token)
	if err != nil {
		t.Fatalf("expected session, got: %v", err)
	}
	if user.ID != "emp1" {
		t.Errorf("expected emp1, got: %s", user.ID)
	}

	if _, err := svc.UserForToken(context.Background(), "not-a-token"); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession for unknown token, got: %v", err)
	}

	svc.Logout(token)
	if _, err := svc.UserForToken(context.Background(), token); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession after logout, got: %v", err)
	}

	// A session whose account was deleted is no longer valid.
	token, _, err = svc.Login(context.Background(), "Sunita Sharma", models.RoleEmployee, "password2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := db.Delete(&models.User{}, "id = ?", "emp2").Error; err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}
	if _, err := svc.UserForToken(context.Background(), token); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession for deleted account, got: %v", err)
	}
}
