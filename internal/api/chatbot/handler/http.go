package chatbotHandler

import (
	chatbotService "CompetitionHub/internal/api/chatbot/service"
	"CompetitionHub/internal/middleware"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatbotHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	chatbotService chatbotService.IChatbotService
	wait           func(time.Duration)
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	cs chatbotService.IChatbotService,
) *ChatbotHandler {
	return &ChatbotHandler{
		log:            log,
		validator:      validator,
		middleware:     middleware,
		chatbotService: cs,
		wait:           time.Sleep,
	}
}

func (h *ChatbotHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	chatbot := srv.Group("/chatbot")
	chatbot.Use(h.middleware.NewRateLimiter)

	chatbot.Post("/messages", h.SendMessage)
	chatbot.Get("/quick-actions", h.ListQuickActions)
	chatbot.Post("/quick-actions/:id", h.TriggerQuickAction)
	chatbot.Get("/sessions/:id/messages", h.GetTranscript)

	chatbot.Use("/ws", wsMiddleware)
	chatbot.Get("/ws", websocket.New(h.handleWebSocket))
}
