package adminService

import (
	"CompetitionHub/internal/api/admin"
	"CompetitionHub/pkg/bcrypt"
	jwtPkg "CompetitionHub/pkg/jwt"
	"CompetitionHub/pkg/redis"
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultTokenTTL = 24 * time.Hour

	// A username is locked for lockoutWindow after maxFailedLogins misses.
	maxFailedLogins = 5
	lockoutWindow   = 15 * time.Minute
)

type IAdminService interface {
	Login(ctx context.Context, req admin.LoginRequest) (admin.LoginResponse, error)
}

// Credentials describe the single organiser account. PasswordHash is a
// bcrypt hash.
type Credentials struct {
	Username     string
	PasswordHash string
	TokenSecret  string
	TokenTTL     time.Duration
}

// CredentialsFromEnv reads ADMIN_USERNAME, ADMIN_PASSWORD_HASH,
// ADMIN_TOKEN_TTL and the shared JWT secret.
func CredentialsFromEnv() Credentials {
	ttl, err := time.ParseDuration(os.Getenv("ADMIN_TOKEN_TTL"))
	if err != nil || ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return Credentials{
		Username:     os.Getenv("ADMIN_USERNAME"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		TokenSecret:  os.Getenv(jwtPkg.AccessTokenSecretEnv),
		TokenTTL:     ttl,
	}
}

type adminService struct {
	log         *logrus.Logger
	bcryptUtils bcrypt.IBcrypt
	store       redis.IRedis
	creds       Credentials
	now         func() time.Time
}

func NewAdminService(log *logrus.Logger, bcryptUtils bcrypt.IBcrypt, store redis.IRedis, creds Credentials) IAdminService {
	if creds.TokenTTL <= 0 {
		creds.TokenTTL = defaultTokenTTL
	}
	return &adminService{
		log:         log,
		bcryptUtils: bcryptUtils,
		store:       store,
		creds:       creds,
		now:         time.Now,
	}
}
