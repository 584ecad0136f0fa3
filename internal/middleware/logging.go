package middleware

import (
	"CompetitionHub/pkg/log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

var sensitiveFields = []string{
	"password", "token", "secret", "key", "auth",
	"credential", "authorization",
}

// personalFields are masked on registration bodies.
var personalFields = []string{
	"email", "whatsapp", "tempatTanggalLahir",
}

func (m *middleware) NewLoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := m.GetRequestID(c)
		c.Locals(log.RequestIDKey, requestID)

		err := c.Next()
		if err != nil {
			// let fiber's error handler write the status before it is logged
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		latency := time.Since(start)
		status := c.Response().StatusCode()

		logFields := logrusFields(c, requestID)
		logFields["status"] = status
		logFields["latency_ms"] = latency.Milliseconds()
		logFields["host"] = c.Hostname()
		logFields["user_agent"] = c.Get(fiber.HeaderUserAgent)
		logFields["referer"] = c.Get(fiber.HeaderReferer)
		logFields["response_size"] = len(c.Response().Body())

		if body := c.Request().Body(); len(body) > 0 {
			logFields["request_body"] = sanitizeRequestBody(c.Path(), body)
		}

		if status >= 500 {
			m.log.WithFields(logFields).Error("Server error")
		} else if status >= 400 {
			m.log.WithFields(logFields).Warn("Client error")
		} else {
			m.log.WithFields(logFields).Info("Success")
		}

		return nil
	}
}

func logrusFields(c *fiber.Ctx, requestID string) log.Fields {
	return log.Fields{
		"request_id": requestID,
		"method":     c.Method(),
		"path":       c.Path(),
		"ip":         c.IP(),
	}
}

func sanitizeRequestBody(path string, body []byte) string {
	var jsonBody map[string]interface{}
	if err := jsoniter.Unmarshal(body, &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	fields := sensitiveFields
	if strings.Contains(path, "/registrations") {
		fields = append(fields[:len(fields):len(fields)], personalFields...)
	}

	for _, field := range fields {
		if _, exists := jsonBody[field]; exists {
			jsonBody[field] = "[SECRET]"
		}
	}

	sanitized, err := jsoniter.MarshalToString(jsonBody)
	if err != nil {
		return "[sanitization-failed]"
	}

	return sanitized
}
