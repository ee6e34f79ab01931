package auth

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"replenishhq/internal/models"
	"replenishhq/internal/storage"
)

func newTestService() *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(storage.NewMemory(), "test-secret", log)
}

func TestLoginBuiltinAdmin(t *testing.T) {
	svc := newTestService()

	user, token, err := svc.Login("admin@replenishhq.com", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Name != "John Doe" || user.Role != models.RoleAdmin {
		t.Errorf("got user %+v", user)
	}
	if token == "" {
		t.Error("expected a token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Name != "John Doe" || claims.Role != models.RoleAdmin {
		t.Errorf("got claims %+v", claims)
	}
}

func TestLoginIsCaseInsensitiveOnEmail(t *testing.T) {
	svc := newTestService()

	user, _, err := svc.Login("Manager@ReplenishHQ.com", "manager123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Role != models.RoleManager {
		t.Errorf("role = %q, want %q", user.Role, models.RoleManager)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService()

	cases := []struct{ email, password string }{
		{"admin@replenishhq.com", "wrong"},
		{"nobody@replenishhq.com", "admin123"},
		{"", ""},
	}
	for _, tc := range cases {
		if _, _, err := svc.Login(tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q) = %v, want ErrInvalidCredentials", tc.email, tc.password, err)
		}
	}
}

func TestSignupCreatesStaffAccount(t *testing.T) {
	svc := newTestService()

	user, token, err := svc.Signup("New Hire", "hire@replenishhq.com", "secret1")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.Role != models.RoleStaff {
		t.Errorf("role = %q, want %q", user.Role, models.RoleStaff)
	}
	if token == "" {
		t.Error("expected a token")
	}

	// The new account must survive a logout and allow a fresh login.
	svc.Logout()
	if _, ok := svc.CurrentUser(); ok {
		t.Error("session should be cleared after logout")
	}
	if _, _, err := svc.Login("hire@replenishhq.com", "secret1"); err != nil {
		t.Errorf("login after signup: %v", err)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService()

	if _, _, err := svc.Signup("Clone", "admin@replenishhq.com", "secret1"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
	if _, _, err := svc.Signup("First", "dup@replenishhq.com", "secret1"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, _, err := svc.Signup("Second", "DUP@replenishhq.com", "other12"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestSessionPersistsCurrentUser(t *testing.T) {
	svc := newTestService()

	if _, ok := svc.CurrentUser(); ok {
		t.Fatal("no session expected before login")
	}
	want, _, err := svc.Login("admin@replenishhq.com", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	got, ok := svc.CurrentUser()
	if !ok || got != want {
		t.Errorf("CurrentUser() = %+v, %v; want %+v", got, ok, want)
	}
}

func TestUpdateName(t *testing.T) {
	svc := newTestService()

	if _, err := svc.UpdateName("Johnny"); err == nil {
		t.Error("renaming without a session should fail")
	}

	if _, _, err := svc.Login("admin@replenishhq.com", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	user, err := svc.UpdateName("Johnny")
	if err != nil {
		t.Fatalf("update name: %v", err)
	}
	if user.Name != "Johnny" || user.Role != models.RoleAdmin {
		t.Errorf("user = %+v", user)
	}
	if got, _ := svc.CurrentUser(); got.Name != "Johnny" {
		t.Errorf("session name = %q", got.Name)
	}

	if _, err := svc.UpdateName("   "); err == nil {
		t.Error("blank name should be rejected")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	svc := newTestService()
	other := NewService(storage.NewMemory(), "other-secret", slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, token, err := svc.Login("admin@replenishhq.com", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret should not validate")
	}
	if _, err := svc.ValidateToken(token + "x"); err == nil {
		t.Error("mangled token should not validate")
	}
}
