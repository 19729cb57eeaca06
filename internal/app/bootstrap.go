package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/waruna834/skills-project-manager/internal/config"
	"github.com/waruna834/skills-project-manager/internal/delivery/http/handler"
	"github.com/waruna834/skills-project-manager/internal/delivery/http/middleware"
	"github.com/waruna834/skills-project-manager/internal/delivery/http/routes"
	"github.com/waruna834/skills-project-manager/internal/logger"
	"github.com/waruna834/skills-project-manager/internal/usecase"
	"github.com/waruna834/skills-project-manager/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

type Deps struct {
	Matching  usecase.MatchingUsecase
	Skills    usecase.SkillUsecase
	Analytics usecase.AnalyticsUsecase
	Hub       *ws.Hub
	Logger    *zap.Logger
}

func New(cfg config.Config, deps Deps) *App {
	l := logger.OrNop(deps.Logger)
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, l)
	registerRoutes(f, cfg, deps, l)

	return &App{Fiber: f}
}

// Bootstrap wires the container into an App. The hub runs until ctx is done;
// cleanup releases the container.
func Bootstrap(ctx context.Context, cfg config.Config, l *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, l)
	if err != nil {
		return nil, nil, err
	}

	go c.Hub.Run(ctx)

	app := New(cfg, Deps{
		Matching:  c.Matching,
		Skills:    c.Skills,
		Analytics: c.Analytics,
		Hub:       c.Hub,
		Logger:    c.Logger,
	})
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, l *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(l).Middleware())
	app.Use(middleware.NewErrorMiddleware(l).Middleware())
}

func registerRoutes(app *fiber.App, cfg config.Config, deps Deps, l *zap.Logger) {
	if app == nil {
		return
	}

	var matchHandler *handler.MatchHandler
	if deps.Matching != nil {
		matchHandler = handler.NewMatchHandler(deps.Matching)
	}
	var skillHandler *handler.SkillHandler
	if deps.Skills != nil {
		skillHandler = handler.NewSkillHandler(deps.Skills)
	}
	var analyticsHandler *handler.AnalyticsHandler
	if deps.Analytics != nil {
		analyticsHandler = handler.NewAnalyticsHandler(deps.Analytics)
	}
	var wsHandler *ws.Handler
	if deps.Hub != nil {
		wsHandler = ws.NewHandler(deps.Hub, l)
	}

	routes.NewRegistry(handler.NewHealthHandler(cfg.App.AppName), matchHandler, skillHandler, analyticsHandler, wsHandler).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
