package middleware

import (
	jwtPkg "CompetitionHub/pkg/jwt"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewTokenMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	NewLoggingMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

// Config tunes the per-IP limiter and the admin token check.
type Config struct {
	RequestsPerSecond rate.Limit
	Burst             int
	TokenSecret       string
}

type middleware struct {
	token               *tokenMiddleware
	rateLimitter        *rateLimiter
	requestIDMiddleware fiber.Handler
	log                 *logrus.Logger
}

// New reads RATE_LIMIT_RPS, RATE_LIMIT_BURST and JWT_ACCESS_TOKEN_SECRET.
func New(logger *logrus.Logger) Middleware {
	return NewWithConfig(logger, Config{
		RequestsPerSecond: rate.Limit(envFloat("RATE_LIMIT_RPS", 50)),
		Burst:             int(envFloat("RATE_LIMIT_BURST", 100)),
		TokenSecret:       os.Getenv(jwtPkg.AccessTokenSecretEnv),
	})
}

func NewWithConfig(logger *logrus.Logger, cfg Config) Middleware {
	return &middleware{
		token:               newTokenMiddleware(cfg.TokenSecret),
		rateLimitter:        newRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
		requestIDMiddleware: NewRequestIDMiddleware(),
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
