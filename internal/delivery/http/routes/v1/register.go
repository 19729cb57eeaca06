package v1

import (
	"github.com/waruna834/skills-project-manager/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Match     *handler.MatchHandler
	Skills    *handler.SkillHandler
	Analytics *handler.AnalyticsHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Match != nil {
		h.Match.RegisterRoutes(r)
	}
	if h.Skills != nil {
		h.Skills.RegisterRoutes(r)
	}
	if h.Analytics != nil {
		h.Analytics.RegisterRoutes(r)
	}
}
