package chatbotRepository

import (
	"CompetitionHub/internal/entity"
	"CompetitionHub/pkg/redis"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// SessionTTL is how long an idle transcript survives. Every append resets it.
const SessionTTL = 30 * time.Minute

const sessionKeyPrefix = "chat:session:"

type Repository interface {
	Append(ctx context.Context, sessionID string, messages ...entity.ChatMessage) error
	List(ctx context.Context, sessionID string) ([]entity.ChatMessage, error)
	Exists(ctx context.Context, sessionID string) (bool, error)
}

type sessionRepository struct {
	redis redis.IRedis
	ttl   time.Duration
	log   *logrus.Logger
}

func New(redisClient redis.IRedis, log *logrus.Logger) Repository {
	return &sessionRepository{
		redis: redisClient,
		ttl:   SessionTTL,
		log:   log,
	}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
