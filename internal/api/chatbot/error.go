package chatbot

import "CompetitionHub/pkg/response"

var (
	ErrBlankMessage        = response.NewError(400, "message must not be blank")
	ErrMessageTooLong      = response.NewError(400, "message must be at most 1000 characters")
	ErrInvalidSessionID    = response.NewError(400, "invalid session id")
	ErrQuickActionNotFound = response.NewError(404, "quick action not found")
	ErrSessionNotFound     = response.NewError(404, "chat session not found")
	ErrInvalidFrame        = response.NewError(400, "frame must be JSON with message or quick_action")
)
