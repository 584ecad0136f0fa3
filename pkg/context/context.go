package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type ctxKey string

const RequestIDKey = "request_id"

// HeaderRequestID is both the header and the fiber Locals key the request id
// middleware uses.
const HeaderRequestID = "X-Request-ID"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	//nolint:staticcheck // pkg/log reads the plain string key
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

const clientIPKey ctxKey = "client_ip"

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}

// FromFiberCtx builds a detached context carrying the request id and client
// ip, so work started by a handler can outlive fasthttp's ctx recycling.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	requestID, ok := c.Locals(HeaderRequestID).(string)
	if !ok || requestID == "" {
		requestID = c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = "unknown"
		}
	}

	ctx := WithRequestID(context.Background(), requestID)
	return WithClientIP(ctx, c.IP())
}
