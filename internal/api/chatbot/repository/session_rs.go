package chatbotRepository

import (
	"CompetitionHub/internal/entity"
	contextPkg "CompetitionHub/pkg/context"
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func (r *sessionRepository) Append(ctx context.Context, sessionID string, messages ...entity.ChatMessage) error {
	requestID := contextPkg.GetRequestID(ctx)

	values := make([]string, 0, len(messages))
	for _, m := range messages {
		encoded, err := jsoniter.MarshalToString(m)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": sessionID,
				"error":      err.Error(),
			}).Error("Failed to encode chat message")
			return fmt.Errorf("encode chat message: %w", err)
		}
		values = append(values, encoded)
	}

	if err := r.redis.Append(ctx, sessionKey(sessionID), r.ttl, values...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to append chat messages")
		return err
	}

	return nil
}

func (r *sessionRepository) List(ctx context.Context, sessionID string) ([]entity.ChatMessage, error) {
	requestID := contextPkg.GetRequestID(ctx)

	raw, err := r.redis.List(ctx, sessionKey(sessionID))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to read chat transcript")
		return nil, err
	}

	messages := make([]entity.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var m entity.ChatMessage
		if err := jsoniter.UnmarshalFromString(item, &m); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Skipping undecodable chat message")
			continue
		}
		messages = append(messages, m)
	}

	return messages, nil
}

func (r *sessionRepository) Exists(ctx context.Context, sessionID string) (bool, error) {
	return r.redis.Exists(ctx, sessionKey(sessionID))
}
