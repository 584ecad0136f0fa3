package adminService

import (
	"CompetitionHub/internal/api/admin"
	"CompetitionHub/internal/entity"
	bcryptPkg "CompetitionHub/pkg/bcrypt"
	jwtPkg "CompetitionHub/pkg/jwt"
	"CompetitionHub/pkg/redis"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const secret = "admin-service-secret"

func newTestService(t *testing.T, creds Credentials) IAdminService {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	hasher := bcryptPkg.NewWithCost(bcrypt.MinCost)
	if creds.PasswordHash == "" && creds.Username != "" {
		hash, err := hasher.HashPassword("rahasia123")
		if err != nil {
			t.Fatal(err)
		}
		creds.PasswordHash = hash
	}
	return NewAdminService(logger, hasher, redis.NewMemory(), creds)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, Credentials{Username: "panitia", TokenSecret: secret})

	resp, err := svc.Login(context.Background(), admin.LoginRequest{Username: "panitia", Password: "rahasia123"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.TokenType != "Bearer" || resp.Username != "panitia" {
		t.Fatalf("Login() = %+v", resp)
	}

	claims, err := jwtPkg.Parse(secret, resp.AccessToken)
	if err != nil {
		t.Fatal(err)
	}
	if claims["role"] != entity.RoleAdmin || claims["username"] != "panitia" {
		t.Fatalf("claims = %v", claims)
	}
}

func TestLogin_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		creds   Credentials
		req     admin.LoginRequest
		wantErr error
	}{
		{
			name:    "wrong password",
			creds:   Credentials{Username: "panitia", TokenSecret: secret},
			req:     admin.LoginRequest{Username: "panitia", Password: "salah"},
			wantErr: admin.ErrInvalidCredentials,
		},
		{
			name:    "wrong username",
			creds:   Credentials{Username: "panitia", TokenSecret: secret},
			req:     admin.LoginRequest{Username: "tamu", Password: "rahasia123"},
			wantErr: admin.ErrInvalidCredentials,
		},
		{
			name:    "not configured",
			creds:   Credentials{},
			req:     admin.LoginRequest{Username: "panitia", Password: "rahasia123"},
			wantErr: admin.ErrAdminNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.creds)
			if _, err := svc.Login(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogin_Lockout(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, Credentials{Username: "panitia", TokenSecret: secret})
	ctx := context.Background()

	for i := 0; i < maxFailedLogins; i++ {
		if _, err := svc.Login(ctx, admin.LoginRequest{Username: "panitia", Password: "salah"}); !errors.Is(err, admin.ErrInvalidCredentials) {
			t.Fatalf("attempt %d error = %v", i, err)
		}
	}

	if _, err := svc.Login(ctx, admin.LoginRequest{Username: "panitia", Password: "rahasia123"}); !errors.Is(err, admin.ErrTooManyAttempts) {
		t.Fatalf("Login() after lockout error = %v, want ErrTooManyAttempts", err)
	}
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "panitia")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$hash")
	t.Setenv("ADMIN_TOKEN_TTL", "2h")
	t.Setenv(jwtPkg.AccessTokenSecretEnv, "s")

	creds := CredentialsFromEnv()
	if creds.Username != "panitia" || creds.TokenTTL.Hours() != 2 || creds.TokenSecret != "s" {
		t.Fatalf("CredentialsFromEnv() = %+v", creds)
	}

	t.Setenv("ADMIN_TOKEN_TTL", "")
	if got := CredentialsFromEnv().TokenTTL; got != defaultTokenTTL {
		t.Fatalf("default TTL = %v", got)
	}
}
