package admin

import (
	"CompetitionHub/pkg/response"
	"net/http"
)

var (
	ErrInvalidCredentials = response.NewError(http.StatusUnauthorized, "username or password is wrong")
	ErrTooManyAttempts    = response.NewError(http.StatusTooManyRequests, "too many failed logins, try again later")
	ErrAdminNotConfigured = response.NewError(http.StatusServiceUnavailable, "admin login is not configured")
)
