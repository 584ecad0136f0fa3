package chatbot

import (
	"CompetitionHub/internal/entity"
	chatbotPkg "CompetitionHub/pkg/chatbot"
	"html"
	"time"
)

type SendMessageRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,max=64,alphanum"`
	Message   string `json:"message" validate:"required,notblank,max=1000"`
}

type QuickActionRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,max=64,alphanum"`
}

type MessageResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	HTML      string `json:"html"`
	IsBot     bool   `json:"is_bot"`
	Intent    string `json:"intent,omitempty"`
	Timestamp string `json:"timestamp"`
}

type ReplyResponse struct {
	SessionID     string          `json:"session_id"`
	UserMessage   MessageResponse `json:"user_message"`
	BotMessage    MessageResponse `json:"bot_message"`
	Tier          string          `json:"tier"`
	TypingDelayMs int64           `json:"typing_delay_ms"`
}

type TranscriptResponse struct {
	SessionID string            `json:"session_id"`
	Messages  []MessageResponse `json:"messages"`
}

type QuickActionResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// Exchange is one user turn and the bot's answer to it.
type Exchange struct {
	SessionID   string
	User        entity.ChatMessage
	Bot         entity.ChatMessage
	Detection   chatbotPkg.Detection
	TypingDelay time.Duration
}

// WebSocket frames.
const (
	FrameTyping  = "typing"
	FrameMessage = "message"
	FrameError   = "error"
	FrameSession = "session"
)

type InboundFrame struct {
	Message     string `json:"message"`
	QuickAction string `json:"quick_action"`
}

type OutboundFrame struct {
	Type      string           `json:"type"`
	SessionID string           `json:"session_id,omitempty"`
	Message   *MessageResponse `json:"message,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func ToMessageResponse(m entity.ChatMessage) MessageResponse {
	rendered := html.EscapeString(m.Text)
	if m.IsBot {
		rendered = chatbotPkg.FormatHTML(m.Text)
	}
	return MessageResponse{
		ID:        m.ID,
		Text:      m.Text,
		HTML:      rendered,
		IsBot:     m.IsBot,
		Intent:    m.Intent,
		Timestamp: m.Timestamp.Format(time.RFC3339),
	}
}

func ToQuickActionResponses(actions []chatbotPkg.QuickAction) []QuickActionResponse {
	out := make([]QuickActionResponse, 0, len(actions))
	for _, a := range actions {
		out = append(out, QuickActionResponse{ID: a.ID, Text: a.Text, Icon: a.Icon})
	}
	return out
}
