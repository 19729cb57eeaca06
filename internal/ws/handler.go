package ws

import (
	"net/http"

	"github.com/waruna834/skills-project-manager/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Handler struct {
	hub    *Hub
	logger *zap.Logger
}

func NewHandler(hub *Hub, l *zap.Logger) *Handler {
	return &Handler{hub: hub, logger: logger.OrNop(l)}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/ws/matches", h.HandleMatchesWS)
}

func (h *Handler) HandleMatchesWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("ws upgrade failed", zap.Error(err))
			return
		}

		client := NewClient(h.hub, conn)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
