package response

import "github.com/gofiber/fiber/v3"

// SemanticResponse is the envelope for every JSON body the API returns.
type SemanticResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageNotFound            = "not found"
	MessageUnprocessableEntity = "unprocessable entity"
	MessageInternalServerError = "internal server error"
	MessageServiceUnavailable  = "service unavailable"
	MessageMatchingFailed      = "Matching failed"
	MessageError               = "error"
)

func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func Error(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data interface{}) error {
	st := normalizeStatus(status)
	msg := message
	if msg == "" {
		msg = DefaultMessage(st)
	}
	return c.Status(st).JSON(SemanticResponse{Status: st, Message: msg, Data: data})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

// DefaultMessage is the message used when a handler does not supply one.
func DefaultMessage(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusUnprocessableEntity:
		return MessageUnprocessableEntity
	case fiber.StatusServiceUnavailable:
		return MessageServiceUnavailable
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
