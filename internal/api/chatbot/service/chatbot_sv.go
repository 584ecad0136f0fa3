package chatbotService

import (
	"CompetitionHub/internal/api/chatbot"
	"CompetitionHub/internal/entity"
	chatbotPkg "CompetitionHub/pkg/chatbot"
	contextPkg "CompetitionHub/pkg/context"
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *chatbotService) StartSession(ctx context.Context) (string, entity.ChatMessage, error) {
	requestID := contextPkg.GetRequestID(ctx)

	sessionID, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate session id")
		return "", entity.ChatMessage{}, err
	}

	welcome, err := s.openSession(ctx, sessionID)
	if err != nil {
		return "", entity.ChatMessage{}, err
	}

	return sessionID, welcome, nil
}

func (s *chatbotService) Reply(ctx context.Context, sessionID string, text string) (chatbot.Exchange, error) {
	if strings.TrimSpace(text) == "" {
		return chatbot.Exchange{}, chatbot.ErrBlankMessage
	}
	return s.exchange(ctx, sessionID, text, TypingDelay)
}

// ReplyQuickAction answers a menu click as if its label had been typed.
func (s *chatbotService) ReplyQuickAction(ctx context.Context, sessionID string, actionID string) (chatbot.Exchange, error) {
	action, ok := s.classifier.QuickAction(actionID)
	if !ok {
		return chatbot.Exchange{}, chatbot.ErrQuickActionNotFound
	}

	delay := TypingDelay + time.Duration(s.jitter(int64(QuickActionJitter)))
	return s.exchange(ctx, sessionID, action.Text, delay)
}

func (s *chatbotService) QuickActions() []chatbotPkg.QuickAction {
	return s.classifier.QuickActions()
}

func (s *chatbotService) Transcript(ctx context.Context, sessionID string) ([]entity.ChatMessage, error) {
	messages, err := s.repo.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, chatbot.ErrSessionNotFound
	}
	return messages, nil
}

func (s *chatbotService) exchange(ctx context.Context, sessionID string, text string, delay time.Duration) (chatbot.Exchange, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if sessionID == "" {
		id, _, err := s.StartSession(ctx)
		if err != nil {
			return chatbot.Exchange{}, err
		}
		sessionID = id
	} else {
		s.resumeSession(ctx, sessionID)
	}

	detection := s.classifier.Detect(text)

	user, err := s.newMessage(text, false, "")
	if err != nil {
		return chatbot.Exchange{}, err
	}
	bot, err := s.newMessage(detection.Text, true, detection.Intent.String())
	if err != nil {
		return chatbot.Exchange{}, err
	}

	if err := s.repo.Append(ctx, sessionID, user, bot); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Chat transcript not saved")
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"intent":     detection.Intent.String(),
		"tier":       detection.Tier.String(),
		"matched":    detection.Matched,
	}).Debug("Chat message classified")

	return chatbot.Exchange{
		SessionID:   sessionID,
		User:        user,
		Bot:         bot,
		Detection:   detection,
		TypingDelay: delay,
	}, nil
}

// resumeSession reopens an expired or unknown session with a fresh welcome.
// Storage errors only get logged; a reply never fails on the transcript.
func (s *chatbotService) resumeSession(ctx context.Context, sessionID string) {
	exists, err := s.repo.Exists(ctx, sessionID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Could not check chat session")
		return
	}
	if !exists {
		_, _ = s.openSession(ctx, sessionID)
	}
}

func (s *chatbotService) openSession(ctx context.Context, sessionID string) (entity.ChatMessage, error) {
	welcome, err := s.newMessage(chatbotPkg.WelcomeMessage, true, "")
	if err != nil {
		return entity.ChatMessage{}, err
	}

	if err := s.repo.Append(ctx, sessionID, welcome); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Chat transcript not saved")
	}

	return welcome, nil
}

func (s *chatbotService) newMessage(text string, isBot bool, intent string) (entity.ChatMessage, error) {
	now := s.now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return entity.ChatMessage{}, err
	}
	return entity.ChatMessage{
		ID:        id,
		Text:      text,
		IsBot:     isBot,
		Intent:    intent,
		Timestamp: now,
	}, nil
}
