package handlerUtil

import (
	"CompetitionHub/internal/api/admin"
	"CompetitionHub/internal/api/chatbot"
	"CompetitionHub/internal/api/competition"
	"CompetitionHub/internal/api/registration"
	"CompetitionHub/pkg/log"
	"CompetitionHub/pkg/response"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

var errorCodes = []struct {
	err  error
	code string
}{
	// Chatbot domain errors
	{chatbot.ErrBlankMessage, "BLANK_MESSAGE"},
	{chatbot.ErrMessageTooLong, "MESSAGE_TOO_LONG"},
	{chatbot.ErrInvalidSessionID, "INVALID_SESSION_ID"},
	{chatbot.ErrQuickActionNotFound, "QUICK_ACTION_NOT_FOUND"},
	{chatbot.ErrSessionNotFound, "SESSION_NOT_FOUND"},
	{chatbot.ErrInvalidFrame, "INVALID_FRAME"},

	// Competition domain errors
	{competition.ErrCompetitionNotFound, "COMPETITION_NOT_FOUND"},
	{competition.ErrInvalidStatusFilter, "INVALID_STATUS_FILTER"},
	{competition.ErrSourceUnavailable, "SOURCE_UNAVAILABLE"},

	// Registration domain errors
	{registration.ErrRegistrationNotFound, "REGISTRATION_NOT_FOUND"},
	{registration.ErrCompetitionClosed, "COMPETITION_CLOSED"},
	{registration.ErrInvalidStep, "INVALID_STEP"},
	{registration.ErrInvalidWhatsapp, "INVALID_WHATSAPP"},
	{registration.ErrSubmissionRejected, "SUBMISSION_REJECTED"},
	{registration.ErrSubmissionFailed, "SUBMISSION_FAILED"},
	{registration.ErrReceiptUnavailable, "RECEIPT_UNAVAILABLE"},

	// Admin domain errors
	{admin.ErrInvalidCredentials, "INVALID_CREDENTIALS"},
	{admin.ErrTooManyAttempts, "TOO_MANY_ATTEMPTS"},
	{admin.ErrAdminNotConfigured, "ADMIN_NOT_CONFIGURED"},
}

func codeOf(err error) string {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return ""
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		fields["code"] = respErr.Code
		if respErr.Code >= fiber.StatusInternalServerError {
			h.logger.WithFields(fields).Error("Operation failed with error response")
		} else {
			h.logger.WithFields(fields).Warn("Operation failed with error response")
		}
		return c.Status(respErr.Code).JSON(ErrorResponse{
			Error: err.Error(),
			Code:  codeOf(err),
		})
	}

	traceID := log.ErrorWithTraceID(fields, "Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "An unexpected error occurred",
		Code:    "INTERNAL_ERROR",
		Details: "trace_id: " + traceID,
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	body := ErrorResponse{
		Error: "Validation failed: " + err.Error(),
		Code:  "VALIDATION_ERROR",
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		body.Fields = make(map[string]string, len(verrs))
		for _, fe := range verrs {
			body.Fields[fe.Field()] = fe.Tag()
		}
	}

	return c.Status(fiber.StatusBadRequest).JSON(body)
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Error: message,
		Code:  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
