package routes

import (
	"github.com/waruna834/skills-project-manager/internal/delivery/http/handler"
	v1 "github.com/waruna834/skills-project-manager/internal/delivery/http/routes/v1"
	"github.com/waruna834/skills-project-manager/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health    *handler.HealthHandler
	match     *handler.MatchHandler
	skills    *handler.SkillHandler
	analytics *handler.AnalyticsHandler
	ws        *ws.Handler
}

func NewRegistry(health *handler.HealthHandler, match *handler.MatchHandler, skills *handler.SkillHandler, analytics *handler.AnalyticsHandler, wsHandler *ws.Handler) *Registry {
	return &Registry{health: health, match: match, skills: skills, analytics: analytics, ws: wsHandler}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerLegacy(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

// registerLegacy keeps the unversioned POST /match used by older clients.
func (r *Registry) registerLegacy(app *fiber.App) {
	if r.match != nil {
		app.Post("/match", r.match.Match)
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws != nil {
		r.ws.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), v1.Handlers{Match: r.match, Skills: r.skills, Analytics: r.analytics})
}
