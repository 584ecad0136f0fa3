package chatbotHandler

import (
	"CompetitionHub/internal/api/chatbot"
	"CompetitionHub/internal/middleware"
	contextPkg "CompetitionHub/pkg/context"
	"CompetitionHub/pkg/response"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const (
	wsReadTimeout  = 5 * time.Minute
	wsWriteTimeout = 10 * time.Second
)

// handleWebSocket serves one chat session per connection. Frames are handled
// one at a time so replies go out in the order the messages arrived.
func (h *ChatbotHandler) handleWebSocket(c *websocket.Conn) {
	requestID, _ := c.Locals(middleware.RequestIDKey).(string)
	ctx := contextPkg.WithRequestID(context.Background(), requestID)

	fields := logrus.Fields{"request_id": requestID}
	h.log.WithFields(fields).Info("Chatbot WebSocket client connected")
	defer h.log.WithFields(fields).Info("Chatbot WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.WithFields(fields).Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	sessionID := c.Query("session_id")
	if sessionID != "" && h.validator.Var(sessionID, sessionIDRule) != nil {
		_ = h.writeFrame(c, chatbot.OutboundFrame{Type: chatbot.FrameError, Error: chatbot.ErrInvalidSessionID.Error()})
		return
	}

	if sessionID == "" {
		id, welcome, err := h.chatbotService.StartSession(ctx)
		if err != nil {
			h.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to start chat session")
			_ = h.writeFrame(c, chatbot.OutboundFrame{Type: chatbot.FrameError, Error: "failed to start session"})
			return
		}
		sessionID = id

		if err := h.writeFrame(c, chatbot.OutboundFrame{Type: chatbot.FrameSession, SessionID: sessionID}); err != nil {
			return
		}
		msg := chatbot.ToMessageResponse(welcome)
		if err := h.writeFrame(c, chatbot.OutboundFrame{Type: chatbot.FrameMessage, SessionID: sessionID, Message: &msg}); err != nil {
			return
		}
	} else if err := h.writeFrame(c, chatbot.OutboundFrame{Type: chatbot.FrameSession, SessionID: sessionID}); err != nil {
		return
	}

	for {
		if err := c.SetReadDeadline(time.Now().Add(wsReadTimeout)); err != nil {
			h.log.WithFields(fields).Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, payload, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithFields(fields).Errorf("Chatbot WebSocket error: %v", err)
			}
			break
		}

		if messageType != websocket.TextMessage {
			h.log.WithFields(fields).Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		exchange, err := h.handleFrame(ctx, sessionID, payload)
		if err != nil {
			if writeErr := h.writeFrame(c, chatbot.OutboundFrame{Type: chatbot.FrameError, SessionID: sessionID, Error: clientMessage(err)}); writeErr != nil {
				break
			}
			continue
		}
		sessionID = exchange.SessionID

		if err := h.writeFrame(c, chatbot.OutboundFrame{Type: chatbot.FrameTyping, SessionID: sessionID}); err != nil {
			break
		}
		h.wait(exchange.TypingDelay)

		msg := chatbot.ToMessageResponse(exchange.Bot)
		if err := h.writeFrame(c, chatbot.OutboundFrame{Type: chatbot.FrameMessage, SessionID: sessionID, Message: &msg}); err != nil {
			break
		}
	}
}

func (h *ChatbotHandler) handleFrame(ctx context.Context, sessionID string, payload []byte) (chatbot.Exchange, error) {
	var frame chatbot.InboundFrame
	if err := jsoniter.Unmarshal(payload, &frame); err != nil {
		return chatbot.Exchange{}, chatbot.ErrInvalidFrame
	}

	if frame.QuickAction != "" {
		return h.chatbotService.ReplyQuickAction(ctx, sessionID, frame.QuickAction)
	}
	if strings.TrimSpace(frame.Message) == "" {
		return chatbot.Exchange{}, chatbot.ErrBlankMessage
	}
	if h.validator.Var(frame.Message, "max=1000") != nil {
		return chatbot.Exchange{}, chatbot.ErrMessageTooLong
	}
	return h.chatbotService.Reply(ctx, sessionID, frame.Message)
}

func (h *ChatbotHandler) writeFrame(c *websocket.Conn, frame chatbot.OutboundFrame) error {
	if err := c.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
		return err
	}
	if err := c.WriteJSON(frame); err != nil {
		h.log.Errorf("Error writing WebSocket frame: %v", err)
		return err
	}
	return nil
}

func clientMessage(err error) string {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		return respErr.Error()
	}
	return "An unexpected error occurred"
}
