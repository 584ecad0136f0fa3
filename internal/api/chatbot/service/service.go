package chatbotService

import (
	"CompetitionHub/internal/api/chatbot"
	chatbotRepository "CompetitionHub/internal/api/chatbot/repository"
	"CompetitionHub/internal/entity"
	chatbotPkg "CompetitionHub/pkg/chatbot"
	"CompetitionHub/pkg/utils"
	"context"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// TypingDelay paces a reply to a typed message.
	TypingDelay = 800 * time.Millisecond
	// QuickActionJitter is added on top of TypingDelay for quick actions.
	QuickActionJitter = 500 * time.Millisecond
)

type IChatbotService interface {
	StartSession(ctx context.Context) (string, entity.ChatMessage, error)
	Reply(ctx context.Context, sessionID string, text string) (chatbot.Exchange, error)
	ReplyQuickAction(ctx context.Context, sessionID string, actionID string) (chatbot.Exchange, error)
	QuickActions() []chatbotPkg.QuickAction
	Transcript(ctx context.Context, sessionID string) ([]entity.ChatMessage, error)
}

type chatbotService struct {
	log        *logrus.Logger
	classifier chatbotPkg.IClassifier
	repo       chatbotRepository.Repository
	utils      utils.IUtils
	now        func() time.Time
	jitter     func(n int64) int64
}

func NewChatbotService(
	log *logrus.Logger,
	classifier chatbotPkg.IClassifier,
	repo chatbotRepository.Repository,
	utils utils.IUtils,
) IChatbotService {
	return &chatbotService{
		log:        log,
		classifier: classifier,
		repo:       repo,
		utils:      utils,
		now:        time.Now,
		jitter:     rand.Int64N,
	}
}
