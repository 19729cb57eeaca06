package middleware

import (
	"errors"
	"fmt"

	"github.com/waruna834/skills-project-manager/internal/logger"
	"github.com/waruna834/skills-project-manager/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
	// Expose keeps Message and Data on 5xx responses, which are masked otherwise.
	Expose bool
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

// NewComputationError reports a failure inside a computation with its cause
// message visible to the caller.
func NewComputationError(message string, cause error) *AppError {
	data := fiber.Map{}
	if cause != nil {
		data["error"] = cause.Error()
	}
	return &AppError{
		StatusCode: fiber.StatusInternalServerError,
		Message:    message,
		Data:       data,
		Cause:      cause,
		Expose:     true,
	}
}

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(l *zap.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger.OrNop(l)}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered",
					zap.String("path", c.Path()),
					zap.String("panic", fmt.Sprint(r)),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= 500 {
			m.logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Error(err),
			)
		}
		return response.Error(c, status, msg, data)
	}
}

func normalizeError(err error) (int, string, interface{}) {
	if err == nil {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode <= 0 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}

		status := appErr.StatusCode
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessage(status)
		}

		if status >= 500 && !appErr.Expose {
			return status, response.DefaultMessage(status), nil
		}
		return status, msg, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}

		if status >= 500 {
			return status, response.DefaultMessage(status), nil
		}

		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessage(status)
		}
		return status, msg, nil
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}
