package middleware

import (
	"CompetitionHub/internal/entity"
	jwtPkg "CompetitionHub/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const unauthorizedMessage = "Unauthorized, access token invalid or expired"

type tokenMiddleware struct {
	secret string
}

func newTokenMiddleware(secret string) *tokenMiddleware {
	return &tokenMiddleware{secret: secret}
}

// NewTokenMiddleware admits only requests carrying an admin access token and
// stores the admin in Locals("admin").
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	requestID := m.GetRequestID(ctx)

	accessToken, err := jwtPkg.BearerToken(ctx)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"client_ip":  ctx.IP(),
			"error":      err.Error(),
		}).Warn("Authorization header check")
		return m.unauthorized(ctx)
	}

	claims, err := jwtPkg.Parse(m.token.secret, accessToken)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"error":      err.Error(),
		}).Warn("Token verification failed")
		return m.unauthorized(ctx)
	}

	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if id == "" || username == "" || role != entity.RoleAdmin {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"role":       role,
		}).Warn("Token claims are missing required fields")
		return m.unauthorized(ctx)
	}

	ctx.Locals("admin", entity.AdminLoginData{
		ID:       id,
		Username: username,
		Role:     role,
	})

	m.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"username":   username,
	}).Debug("Authentication successful")
	return ctx.Next()
}

func (m *middleware) unauthorized(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": unauthorizedMessage,
		"code":  "UNAUTHORIZED",
	})
}
