package service

import (
	"clinicdesk/cmd/internal/domain/entity"
	"clinicdesk/cmd/internal/domain/memory"
	"clinicdesk/cmd/internal/utils/clock"
	"clinicdesk/cmd/internal/utils/token"
	"clinicdesk/cmd/internal/utils/validators"
	"golang.org/x/crypto/bcrypt"
	"net/http"
	"testing"
	"time"
)

func newUserService(t *testing.T) (*DefaultUserService, *token.Issuer) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	repo := memory.NewUserRepository()
	_ = repo.Save(&entity.User{Username: "staff", PasswordHash: string(hash), Name: "Clinic Staff", Role: "staff"})

	issuer := token.NewIssuer("test-secret", time.Hour, clock.NewManaged(time.Now()))
	return NewUserService(repo, validators.New(), issuer), issuer
}

func TestLogin(t *testing.T) {
	svc, issuer := newUserService(t)

	resp, apierr := svc.Login(&UserLoginRequest{Username: "staff", Password: "staff123"})
	if apierr != nil {
		t.Fatalf("Login failed: %v", apierr)
	}
	if resp.User.Username != "staff" || resp.User.Role != "staff" {
		t.Errorf("unexpected user: %+v", resp.User)
	}

	data, err := issuer.Parse(resp.Token)
	if err != nil || data.UserID != resp.User.ID {
		t.Errorf("token does not identify the user: %+v, %v", data, err)
	}

	user, apierr := svc.GetUser(data.UserID)
	if apierr != nil || user.Name != "Clinic Staff" {
		t.Errorf("GetUser = %+v, %v", user, apierr)
	}
}

func TestLogin_Errors(t *testing.T) {
	svc, _ := newUserService(t)

	tests := []struct {
		name     string
		req      *UserLoginRequest
		wantCode int
	}{
		{"missing password", &UserLoginRequest{Username: "staff"}, http.StatusBadRequest},
		{"missing username", &UserLoginRequest{Password: "x"}, http.StatusBadRequest},
		{"unknown user", &UserLoginRequest{Username: "ghost", Password: "staff123"}, http.StatusUnauthorized},
		{"wrong password", &UserLoginRequest{Username: "staff", Password: "nope"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, apierr := svc.Login(tt.req)
			if apierr == nil || apierr.Code() != tt.wantCode {
				t.Errorf("got %v, want code %d", apierr, tt.wantCode)
			}
		})
	}
}
