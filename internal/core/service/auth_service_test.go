package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/colisgo/delivery-platform/internal/core/domain"
	"github.com/colisgo/delivery-platform/internal/core/ports"
)

type stubAuthRepo struct {
	users map[string]*domain.User
	next  int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	r.next++
	copied := *user
	copied.ID = "user-" + strconv.Itoa(r.next)
	r.users[user.Email] = &copied
	return &copied, nil
}

const testSecret = "test-secret"

func registerInput(userType string) ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Jean Test",
		Email:    "jean@example.com",
		Password: "s3cret!pass",
		UserType: userType,
	}
}

func TestRegister_ClientIsVerifiedImmediately(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testSecret, time.Hour)

	user, err := svc.Register(context.Background(), registerInput("client"))
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if user.ID == "" {
		t.Error("registered user has no id")
	}
	if !user.IsVerified {
		t.Error("clients must be verified on registration")
	}
	if user.PasswordHash == "s3cret!pass" {
		t.Error("password stored in plain text")
	}
}

func TestRegister_DriverStartsUnverified(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testSecret, time.Hour)

	user, err := svc.Register(context.Background(), registerInput("driver"))
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if user.IsVerified {
		t.Error("drivers must start unverified")
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testSecret, time.Hour)

	tests := []struct {
		name   string
		mutate func(*ports.RegisterInput)
	}{
		{"missing email", func(i *ports.RegisterInput) { i.Email = "" }},
		{"missing password", func(i *ports.RegisterInput) { i.Password = "" }},
		{"missing name", func(i *ports.RegisterInput) { i.Name = "" }},
		{"unknown user type", func(i *ports.RegisterInput) { i.UserType = "admin" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := registerInput("client")
			tt.mutate(&input)
			if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Errorf("error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	if _, err := svc.Register(context.Background(), registerInput("client")); err != nil {
		t.Fatalf("first Register() error: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput("client")); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("error = %v, want ErrUserExists", err)
	}
}

func TestLogin_ReturnsSignedTokenWithClaims(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	registered, err := svc.Register(context.Background(), registerInput("driver"))
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "jean@example.com", "s3cret!pass", "driver")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("user id = %s, want %s", user.ID, registered.ID)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["user_id"] != registered.ID {
		t.Errorf("user_id claim = %v, want %s", claims["user_id"], registered.ID)
	}
	if claims["user_type"] != "driver" {
		t.Errorf("user_type claim = %v, want driver", claims["user_type"])
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testSecret, time.Hour)
	if _, err := svc.Register(context.Background(), registerInput("client")); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "jean@example.com", "wrong", "client")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever", "")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestLogin_UserTypeMismatch(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testSecret, time.Hour)
	if _, err := svc.Register(context.Background(), registerInput("client")); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	// A client account must not authenticate through the driver sign-in flow.
	_, _, err := svc.Login(context.Background(), "jean@example.com", "s3cret!pass", "driver")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_EmptyUserTypeSkipsCheck(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testSecret, time.Hour)
	if _, err := svc.Register(context.Background(), registerInput("supplier")); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "jean@example.com", "s3cret!pass", ""); err != nil {
		t.Errorf("Login() without declared type error: %v", err)
	}
}
