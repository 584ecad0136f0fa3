package chatbotHandler

import (
	"CompetitionHub/internal/api/chatbot"
	contextPkg "CompetitionHub/pkg/context"
	"CompetitionHub/pkg/handlerUtil"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const sessionIDRule = "required,max=64,alphanum"

func (h *ChatbotHandler) SendMessage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req chatbot.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	exchange, err := h.chatbotService.Reply(c, req.SessionID, req.Message)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "send_message")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, toReplyResponse(exchange))
	}
}

func (h *ChatbotHandler) ListQuickActions(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, chatbot.ToQuickActionResponses(h.chatbotService.QuickActions()))
}

func (h *ChatbotHandler) TriggerQuickAction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	req := chatbot.QuickActionRequest{SessionID: ctx.Query("session_id")}
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	exchange, err := h.chatbotService.ReplyQuickAction(c, req.SessionID, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "trigger_quick_action")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, toReplyResponse(exchange))
	}
}

func (h *ChatbotHandler) GetTranscript(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	sessionID := ctx.Params("id")
	if err := h.validator.Var(sessionID, sessionIDRule); err != nil {
		return errHandler.Handle(ctx, requestID, chatbot.ErrInvalidSessionID, ctx.Path(), "get_transcript")
	}

	messages, err := h.chatbotService.Transcript(c, sessionID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transcript")
	}

	resp := chatbot.TranscriptResponse{
		SessionID: sessionID,
		Messages:  make([]chatbot.MessageResponse, 0, len(messages)),
	}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, chatbot.ToMessageResponse(m))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func toReplyResponse(e chatbot.Exchange) chatbot.ReplyResponse {
	return chatbot.ReplyResponse{
		SessionID:     e.SessionID,
		UserMessage:   chatbot.ToMessageResponse(e.User),
		BotMessage:    chatbot.ToMessageResponse(e.Bot),
		Tier:          e.Detection.Tier.String(),
		TypingDelayMs: e.TypingDelay.Milliseconds(),
	}
}
