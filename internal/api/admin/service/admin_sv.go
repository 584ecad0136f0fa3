package adminService

import (
	"CompetitionHub/internal/api/admin"
	"CompetitionHub/internal/entity"
	contextPkg "CompetitionHub/pkg/context"
	jwtPkg "CompetitionHub/pkg/jwt"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *adminService) Login(c context.Context, req admin.LoginRequest) (admin.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if s.creds.Username == "" || s.creds.PasswordHash == "" || s.creds.TokenSecret == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Error("Admin login attempted but credentials are not configured")
		return admin.LoginResponse{}, admin.ErrAdminNotConfigured
	}

	username := strings.TrimSpace(req.Username)
	key := failedLoginKey(username)

	failures, err := s.store.List(c, key)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to read failed login attempts")
	}
	if len(failures) >= maxFailedLogins {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"username":   username,
		}).Warn("Admin login locked out")
		return admin.LoginResponse{}, admin.ErrTooManyAttempts
	}

	// The password is checked even for an unknown username so both cases
	// take the same time.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	passErr := s.bcryptUtils.ComparePassword(s.creds.PasswordHash, req.Password)
	if !userOK || passErr != nil {
		if err := s.store.Append(c, key, lockoutWindow, s.now().Format(time.RFC3339)); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to record failed login")
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"username":   username,
		}).Warn("Invalid admin credentials")
		return admin.LoginResponse{}, admin.ErrInvalidCredentials
	}

	if err := s.store.Delete(c, key); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to reset failed login attempts")
	}

	token, expiresAt, err := jwtPkg.SignWithSecret(s.creds.TokenSecret, map[string]interface{}{
		"id":       s.creds.Username,
		"username": s.creds.Username,
		"role":     entity.RoleAdmin,
	}, s.creds.TokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign admin token")
		return admin.LoginResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"username":   s.creds.Username,
	}).Info("Admin logged in")

	return admin.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Username:    s.creds.Username,
	}, nil
}

func failedLoginKey(username string) string {
	return "admin:login:failed:" + strings.ToLower(username)
}
