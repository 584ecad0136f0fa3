package jwtPkg

import (
	"CompetitionHub/internal/entity"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const AccessTokenSecretEnv = "JWT_ACCESS_TOKEN_SECRET"

var (
	ErrMissingSecret = errors.New("JWT secret not configured")
	ErrMissingHeader = errors.New("empty Authorization header")
	ErrInvalidFormat = errors.New("invalid Authorization format")
)

// Sign issues an HS256 token holding data plus exp, signed with the secret
// from JWT_ACCESS_TOKEN_SECRET.
func Sign(data map[string]interface{}, expiresIn time.Duration) (string, int64, error) {
	return SignWithSecret(os.Getenv(AccessTokenSecretEnv), data, expiresIn)
}

func SignWithSecret(secret string, data map[string]interface{}, expiresIn time.Duration) (string, int64, error) {
	if secret == "" {
		return "", 0, ErrMissingSecret
	}

	expiredAt := time.Now().Add(expiresIn).Unix()

	claims := jwt.MapClaims{}
	for k, v := range data {
		claims[k] = v
	}
	claims["exp"] = expiredAt
	claims["iat"] = time.Now().Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiredAt, nil
}

// Parse verifies an HS256 token and returns its claims.
func Parse(secret, accessToken string) (jwt.MapClaims, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", ErrMissingHeader
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return "", ErrInvalidFormat
	}
	return token, nil
}

func GetAdminLoginData(c *fiber.Ctx) (entity.AdminLoginData, error) {
	admin, ok := c.Locals("admin").(entity.AdminLoginData)
	if !ok {
		return entity.AdminLoginData{}, fiber.ErrUnauthorized
	}
	return admin, nil
}
