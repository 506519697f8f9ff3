package usecase

import (
	"context"
	"errors"
	"testing"

	"stay-booking/internal/data/entity"
	"stay-booking/internal/dto/request"
	"stay-booking/pkg/utils"

	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
		},
	}
}

func TestRegisterIssuesTokenWithRole(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testConfig(), zap.NewNop())

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "host",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}

	claims, err := utils.ParseToken(resp.Token, []byte("test-secret"))
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Role != "host" {
		t.Errorf("claims.Role = %q, want %q", claims.Role, "host")
	}

	user, err := users.FindByEmail(context.Background(), "alice@example.com")
	if err != nil || user == nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.PasswordHash == "secret123" {
		t.Error("password stored in plaintext")
	}
	if !utils.CheckPasswordHash("secret123", user.PasswordHash) {
		t.Error("stored hash does not match password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testConfig(), zap.NewNop())

	req := &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "guest",
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("second Register err = %v, want ErrDuplicateEmail", err)
	}
}

// staleReadUserRepo never sees existing users on lookup, so inserts
// rely on the store's uniqueness constraint alone. This models two
// registrations racing past the email check.
type staleReadUserRepo struct {
	*fakeUserRepo
}

func (s *staleReadUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}

func TestRegisterConcurrentDuplicateEmail(t *testing.T) {
	users := &staleReadUserRepo{fakeUserRepo: newFakeUserRepo()}
	svc := NewAuthService(users, testConfig(), zap.NewNop())

	req := &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "guest",
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("constraint-hit Register err = %v, want ErrDuplicateEmail", err)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "superuser",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testConfig(), zap.NewNop())

	if _, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secret123",
		Role:     "guest",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "bob@example.com",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		claims, err := utils.ParseToken(resp.Token, []byte("test-secret"))
		if err != nil {
			t.Fatalf("ParseToken: %v", err)
		}
		if claims.Role != "guest" {
			t.Errorf("claims.Role = %q, want %q", claims.Role, "guest")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "bob@example.com",
			Password: "wrong-password",
		})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}
